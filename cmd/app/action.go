package main

import (
	"bytes"
	"encoding/json"
	"net/http"

	httpin "patternbook/internal/adapters/in/http"
	"patternbook/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

func actionCmd() *cobra.Command {
	var userName, newPassword string

	command := &cobra.Command{
		Use:   "action",
		Short: "Change a password through three entry shapes",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			root := newRoot()

			userID, err := root.SeedUser(ctx, userName, "initial secret")
			if err != nil {
				return err
			}

			// Shape 1: invoke the handler directly.
			handler := root.CreateUpdatePasswordCommandHandler()
			cmd, err := commands.NewUpdatePasswordCommand(userID, "direct secret")
			if err != nil {
				return err
			}
			if err = handler.Handle(ctx, cmd); err != nil {
				return err
			}
			c.Printf("direct: password of %q updated\n", userName)

			// Shape 2: the same operation through the request handler,
			// including its current-password check.
			server := root.CreatePasswordServer()

			status, body := post(server, httpin.ChangePasswordRequest{
				UserID:          userID.String(),
				CurrentPassword: "direct secret",
				NewPassword:     "requested secret",
			})
			c.Printf("request: %d %s", status, body)

			status, body = post(server, httpin.ChangePasswordRequest{
				UserID:          userID.String(),
				CurrentPassword: "wrong guess",
				NewPassword:     "should not apply",
			})
			c.Printf("request with wrong current password: %d %s", status, body)

			// Shape 3: this subcommand itself, driven by its flags. The
			// account is resolved by name before the handler runs.
			account, err := root.UserRepository().GetByName(ctx, userName)
			if err != nil {
				return err
			}
			cmd, err = commands.NewUpdatePasswordCommand(account.ID(), newPassword)
			if err != nil {
				return err
			}
			if err = handler.Handle(ctx, cmd); err != nil {
				return err
			}
			c.Printf("command: password of %q updated\n", userName)
			return nil
		},
	}

	command.Flags().StringVar(&userName, "user", "alice", "account name to update")
	command.Flags().StringVar(&newPassword, "password", "correct horse battery staple", "new password")
	return command
}

// post drives the request handler in process, without a listener.
func post(server *httpin.PasswordServer, payload httpin.ChangePasswordRequest) (int, string) {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/users/password", bytes.NewReader(body))

	rec := &responseRecorder{status: http.StatusOK}
	server.ChangePassword(rec, req)
	return rec.status, rec.body.String()
}

// responseRecorder captures a handler's response in memory.
type responseRecorder struct {
	status int
	body   bytes.Buffer
	header http.Header
}

func (r *responseRecorder) Header() http.Header {
	if r.header == nil {
		r.header = make(http.Header)
	}
	return r.header
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
}
