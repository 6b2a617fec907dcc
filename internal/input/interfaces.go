package input

//go:generate mockgen -source=interfaces.go -destination=../mock/input_mock.go -package=mock

// LineReader collects one line of user input per call.
type LineReader interface {
	// ReadLine writes prompt to the output stream and reads one line from
	// the input stream. The terminating newline is not part of the result.
	ReadLine(prompt string) (string, error)
}

// Collector obtains the raw key and the raw plain text for one cipher run.
// Implementations decide how the two lines are gathered: plain prompts on
// the standard streams, or the interactive terminal UI.
type Collector interface {
	Collect() (rawKey, rawPlainText string, err error)
}
