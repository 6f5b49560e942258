package errs

import (
	"bytes"
	"strconv"
)

// message is a plain error value that builds its text from mixed arguments.
type message struct {
	text string
}

func (e *message) Error() string {
	return e.text
}

// New joins args with spaces into an error message.
// Supported args: string, []string, rune(':') (joined without a space),
// int, float64, bool and error.
func New(args ...any) error {
	var out bytes.Buffer
	var space string

	for argNumber, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			out.WriteString(space + v)
		case []string:
			for _, s := range v {
				if s == "" {
					continue
				}
				out.WriteString(space + s)
				space = " "
			}
		case rune:
			if v == ':' {
				out.WriteString(":")
				continue
			}
			out.WriteString(space + string(v))
		case int:
			out.WriteString(space + strconv.Itoa(v))
		case float64:
			out.WriteString(space + strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out.WriteString(space + strconv.FormatBool(v))
		case error:
			out.WriteString(space + v.Error())
		default:
			out.WriteString(space + "unsupported arg " + strconv.Itoa(argNumber))
		}
		space = " "
	}

	return &message{text: out.String()}
}
