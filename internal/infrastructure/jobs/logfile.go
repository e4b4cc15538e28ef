package jobs

import "os"

// appendLine appends a single line to the job's log file, creating it if
// needed. Each job owns its own file so partial writes never interleave
// across jobs.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line + "\n")
	return err
}
