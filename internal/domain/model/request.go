package model

// Action names a request sent across the page boundary.
type Action string

const (
	ActionGetProblemDetails Action = "getProblemDetails"
	ActionGetCodeToSubmit   Action = "getCodeToSubmit"
)

// Request asks the page side for a snapshot.
type Request struct {
	Action Action `json:"action"`
	// PageRef is a saved page path or a problem URL.
	PageRef string `json:"-"`
	// EditorState optionally points at an exported editor model dump.
	EditorState string `json:"-"`
}
