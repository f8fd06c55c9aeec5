package response

const (
	// DefaultErrorMessage is the body of every 500 response; causes are only logged.
	DefaultErrorMessage = "Internal Server Error"

	ContentTypeJPEG = "image/jpeg"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Message is the small JSON body used by endpoints that answer errors in JSON.
type Message struct {
	Message string `json:"message"`
}
