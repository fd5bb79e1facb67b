package store

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultTaskFile is the default persistence path.
const DefaultTaskFile = "tasks.md"

// checklistPattern matches one checklist line: an optional indent, a dash
// bullet, a bracketed status marker and the description. Anything else in
// the file (headings, blank lines, prose) is not a task.
var checklistPattern = regexp.MustCompile(`^\s*- \[(.?)\]\s*(.*)$`)

// Load reads the task file at path. A missing file is an empty list, not
// an error. Only checklist lines are parsed; "x" marks Done, "~" marks
// Working, and any other marker falls back to Pending.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return List{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}
	defer f.Close()

	var tasks List
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := checklistPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		desc := strings.TrimSpace(m[2])
		if desc == "" {
			continue
		}
		tasks = append(tasks, Task{Description: desc, Status: markerStatus(m[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if tasks == nil {
		tasks = List{}
	}
	return tasks, nil
}

func markerStatus(marker string) Status {
	switch marker {
	case "x", "X":
		return StatusDone
	case "~":
		return StatusWorking
	default:
		return StatusPending
	}
}

// sectionOrder is the fixed order of status sections in the task file.
var sectionOrder = []Status{StatusWorking, StatusPending, StatusDone}

// Save rewrites the task file from scratch, grouping tasks into
// ## Working, ## Pending and ## Done sections in that order. Empty
// sections are omitted. Relative order within a group follows list order;
// a later Load collapses cross-status order into group order.
func Save(path string, tasks List) error {
	var b strings.Builder
	b.WriteString("# Tasks\n")
	for _, status := range sectionOrder {
		wroteHeading := false
		for _, t := range tasks {
			if t.Status != status {
				continue
			}
			if !wroteHeading {
				fmt.Fprintf(&b, "\n## %s\n\n", status)
				wroteHeading = true
			}
			fmt.Fprintf(&b, "%s %s\n", t.Status.Marker(), t.Description)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}
