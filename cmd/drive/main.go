// Command drive is a terminal client for the classboard notes drive.
// It speaks the same REST API as the web dashboard: listing folders,
// creating folders, uploading PDFs, deleting nodes and downloading
// documents, plus an interactive browse mode.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"classboard/internal/browser"
	"classboard/internal/domain/models"
)

var (
	apiBase string
	token   string
)

func main() {
	root := &cobra.Command{
		Use:           "drive",
		Short:         "Browse and manage the classboard notes drive",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&apiBase, "api", envOr("CLASSBOARD_API", "http://localhost:8080"), "API origin")
	root.PersistentFlags().StringVar(&token, "token", os.Getenv("CLASSBOARD_TOKEN"), "admin bearer token")

	root.AddCommand(
		newLoginCmd(),
		newLsCmd(),
		newMkdirCmd(),
		newUploadCmd(),
		newRmCmd(),
		newGetCmd(),
		newBrowseCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() *browser.Client {
	return browser.NewClient(apiBase, browser.StaticToken(token))
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in as admin and print a bearer token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := newClient().Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(tok)
			return nil
		},
	}
}

func newLsCmd() *cobra.Command {
	var parent string
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the children of a folder (root by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := newClient().List(cmd.Context(), parent)
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), nodes)
			return nil
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "folder id to list (empty = root)")
	return cmd
}

func newMkdirCmd() *cobra.Command {
	var parent string
	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := newClient().CreateFolder(cmd.Context(), args[0], parent)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created folder %s (%s)\n", folder.Name, folder.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent folder id (empty = root)")
	return cmd
}

func newUploadCmd() *cobra.Command {
	var parent, name string
	cmd := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF into a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			displayName := name
			if displayName == "" {
				displayName = filepath.Base(args[0])
			}

			doc, err := newClient().UploadDocument(cmd.Context(), displayName, f, parent)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s)\n", doc.Name, doc.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent folder id (empty = root)")
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the file name)")
	return cmd
}

func newRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a node; folders are deleted with all their contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete this node (folders cascade)? [y/N] ") {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			if err := newClient().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newGetCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get <filename>",
		Short: "Download a document by its storage filename",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newClient().Download(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer rc.Close()

			dest := output
			if dest == "" {
				dest = args[0]
			}

			f, err := os.Create(dest)
			if err != nil {
				return err
			}
			defer f.Close()

			if _, err := io.Copy(f, rc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the storage filename)")
	return cmd
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the drive interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return browse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// browse runs a small REPL over the navigation state machine: a number
// opens that folder, "b" goes back, "r" refreshes, "q" quits.
func browse(ctx context.Context, in io.Reader, out io.Writer) error {
	b := browser.NewBrowser(newClient())
	if err := b.Refresh(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		items := b.Items()
		fmt.Fprintln(out, strings.Join(b.Breadcrumbs(), " > "))
		printNodes(out, items)
		fmt.Fprint(out, "[number]=open  b=back  r=refresh  q=quit > ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "q":
			return nil
		case "b":
			if err := b.Back(ctx); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		case "r":
			if err := b.Refresh(ctx); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		default:
			idx, err := strconv.Atoi(input)
			if err != nil || idx < 1 || idx > len(items) {
				fmt.Fprintln(out, "unknown command")
				continue
			}
			if err := b.Open(ctx, items[idx-1]); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		}
	}
}

func printNodes(out io.Writer, nodes []models.Node) {
	if len(nodes) == 0 {
		fmt.Fprintln(out, "  (empty)")
		return
	}
	for i, n := range nodes {
		if n.Type == models.NodeTypeFolder {
			fmt.Fprintf(out, "%3d. [dir] %-30s %s\n", i+1, n.Name, n.ID)
		} else {
			fmt.Fprintf(out, "%3d. [pdf] %-30s %s (%s)\n", i+1, n.Name, n.ID, n.Filename)
		}
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
