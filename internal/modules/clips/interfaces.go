package clips

// Notifier receives moderation lifecycle events. The live implementation fans
// them out to admin dashboard websockets; delivery is best-effort and must not
// block or fail the calling request.
type Notifier interface {
	Publish(event string, data any)
}

const (
	EventClipSubmitted = "clip.submitted"
	EventClipApproved  = "clip.approved"
	EventClipRejected  = "clip.rejected"
)
