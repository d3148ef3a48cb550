package main

import (
	"errors"
	"fmt"
	"os"

	clientCmd "github.com/goto/chrono/client/cmd"

	cerrors "github.com/goto/chrono/internal/errors"
)

const DefaultExitCode = 1

var errRequestFail = errors.New("🔥 unable to complete request successfully")

//nolint:forbidigo
func main() {
	command := clientCmd.New()

	if err := command.Execute(); err != nil {
		var de *cerrors.DomainError
		if cerrors.As(err, &de) {
			fmt.Println(de.Error())
		}
		fmt.Println(errRequestFail)
		os.Exit(DefaultExitCode)
	}
}
