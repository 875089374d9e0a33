package constant

type contextKey string

// ActorKey carries the authenticated *model.Actor in a request context.
const ActorKey contextKey = "actor"
