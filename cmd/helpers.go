package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/inovacc/droneplan/internal/model"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete all plans? [y/N]: ")
func promptConfirm(w io.Writer, r io.Reader, prompt string) bool {
	_, _ = fmt.Fprint(w, prompt)

	var response string

	_, _ = fmt.Fscanln(r, &response)

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// parsePlanID parses a plan id given on the command line.
func parsePlanID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid plan id %q", s)
	}

	return id, nil
}

func formatCreated(p model.Plan) string {
	return p.CreatedAt().Format("2006-01-02 15:04:05")
}

// printEmptyResult prints a "no results" message with a create hint
func printEmptyResult(w io.Writer, resourceType, createCmd string) {
	_, _ = fmt.Fprintf(w, "No %s saved.\n", resourceType)
	_, _ = fmt.Fprintf(w, "Create one with: %s\n", createCmd)
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}

	padding := (width - n) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-n-padding, "")
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

func printBoxHeader(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
}

// printBoxLine prints a line inside an info box with label and value
func printBoxLine(w io.Writer, label, value string) {
	content := truncateString(fmt.Sprintf("  %s: %s", label, value), boxWidth-2)
	padding := boxWidth - 2 - len([]rune(content))

	_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
}

func printBoxFooter(w io.Writer) {
	_, _ = fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
}

// printInfoBox prints a complete info box with title and key-value pairs
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	printBoxHeader(w, title)

	for _, key := range order {
		if val, ok := items[key]; ok {
			printBoxLine(w, key, val)
		}
	}

	printBoxFooter(w)
}
