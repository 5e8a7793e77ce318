package cmd

import (
	"github.com/spf13/cobra"

	tyboterrors "github.com/tybotlabs/tybotctl/internal/errors"
)

// requireSession gates commands that need a saved login. It only checks that
// credentials exist on disk; the platform validates the token on each request
// and an invalid token is cleared by the client's unauthorized hook.
func requireSession(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	sess, err := store.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		return tyboterrors.NewNotLoggedInError()
	}
	return nil
}
