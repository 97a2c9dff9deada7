package repl

import (
	"errors"
	"fmt"
)

var errQuit = errors.New("quit")

type errUnknownCommand string

func (e errUnknownCommand) Error() string {
	return fmt.Sprintf("Unknown command ‘:%s’; try ‘:help’", string(e))
}

type errUsage string

func (e errUsage) Error() string {
	return "Usage: :" + string(e)
}
