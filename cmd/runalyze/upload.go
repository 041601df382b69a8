package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/browser"
	"github.com/think-nice-things/runalize/app"
	"github.com/urfave/cli/v3"
)

type runOptions struct {
	client      *app.Client
	clip        app.Clipboard
	out         io.Writer
	dryRun      bool
	silent      bool
	openBrowser bool
}

func run(cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		var err error
		configPath, err = defaultConfigPath()
		if err != nil {
			return err
		}
	}

	token, err := resolveToken(configPath, cmd.String("token"), cmd.Bool("silent"))
	if err != nil {
		return err
	}

	opts := runOptions{
		client:      app.NewClient(token),
		clip:        app.DetectClipboard(),
		out:         os.Stdout,
		dryRun:      cmd.Bool("dryrun"),
		silent:      cmd.Bool("silent"),
		openBrowser: cmd.Bool("open"),
	}

	if queueID := cmd.String("verify"); queueID != "" {
		verifyUpload(opts, queueID)
		return nil
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("no files specified for upload, use -h for help")
	}

	for _, path := range files {
		uploadFile(opts, path)
	}
	return nil
}

// uploadFile sends one file and, when the server hands back a queue id,
// immediately verifies the import. Every failure is reported and isolated
// to this file; the batch always moves on.
func uploadFile(opts runOptions, path string) {
	if !opts.silent {
		fmt.Fprintf(opts.out, "Uploading file: %s\n", path)
	}
	if opts.dryRun {
		return
	}

	result, err := opts.client.UploadActivity(path)
	if err != nil {
		var httpErr *app.HTTPError
		switch {
		case errors.As(err, &httpErr):
			fmt.Fprintf(opts.out, "Failed to upload %s. HTTP Status Code: %d\n", path, httpErr.StatusCode)
			if !opts.silent {
				fmt.Fprintf(opts.out, "Response: %s\n", httpErr.Body)
			}
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(opts.out, "Error: File not found: %s\n", path)
		default:
			fmt.Fprintf(opts.out, "An error occurred: %v\n", err)
		}
		return
	}

	if !opts.silent {
		fmt.Fprintf(opts.out, "Successfully uploaded: %s\n", path)
	}

	if result.QueueID == "" {
		fmt.Fprintln(opts.out, "No queue_id returned. Unable to verify upload.")
		return
	}
	verifyUpload(opts, result.QueueID)
}

// verifyUpload queries the import status once. On success the activity URL
// is printed and copied to the clipboard; any other outcome is reported
// without affecting the process exit code.
func verifyUpload(opts runOptions, queueID string) {
	if !opts.silent {
		fmt.Fprintf(opts.out, "Verifying upload with queue_id: %s\n", queueID)
	}

	status, err := opts.client.VerifyUpload(queueID)
	if err != nil {
		var httpErr *app.HTTPError
		if errors.As(err, &httpErr) {
			fmt.Fprintf(opts.out, "Failed to verify upload. HTTP Status Code: %d\n", httpErr.StatusCode)
			fmt.Fprintf(opts.out, "Response: %s\n", httpErr.Body)
		} else {
			fmt.Fprintf(opts.out, "An error occurred during verification: %v\n", err)
		}
		return
	}

	if status.Status != app.StatusImported {
		fmt.Fprintf(opts.out, "Verification failed. Status: %s\n", status.Status)
		return
	}

	activityURL := opts.client.ActivityURL(status.ActivityID)
	if !opts.silent {
		fmt.Fprintln(opts.out, activityURL)
	}

	if err := opts.clip.WriteText(activityURL); err != nil {
		fmt.Fprintf(opts.out, "Warning: failed to copy URL to clipboard: %v\n", err)
	}

	if opts.openBrowser {
		if err := browser.OpenURL(activityURL); err != nil {
			fmt.Fprintf(opts.out, "Warning: failed to open browser: %v\n", err)
		}
	}
}
