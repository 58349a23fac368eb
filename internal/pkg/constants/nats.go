package constants

// NATS subjects
const (
	SubjectRouteReport = "route.report"
)

// NSQ topics
const (
	TopicRouteReport = "route_report"
)
