package adapter

// Adapter runs the proxy under a particular runtime, such as a standalone
// HTTP server or an AWS Lambda function
type Adapter interface {
	// Start blocks until the runtime exits
	Start()
}
