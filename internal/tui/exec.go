package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jnord/tcrdo/internal/check"
	"github.com/jnord/tcrdo/internal/store"
	"github.com/jnord/tcrdo/internal/vcs"
)

// tcrDoneMsg is delivered when the suspended test-and-commit run finishes
// and bubbletea has restored the alternate screen.
type tcrDoneMsg struct {
	run *tcrRun
	err error
}

// tcrRun executes the full test-and-commit sequence while the terminal is
// released by tea.Exec. bubbletea calls Run with the interactive display
// torn down and rebuilds it afterwards, which gives the suspension a
// defined re-entry contract.
type tcrRun struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	command  string
	message  string
	taskFile string
	tasks    store.List
	git      *vcs.Client

	result    check.Result
	saveErr   error
	commitErr error
	revertErr error
}

func (r *tcrRun) SetStdin(in io.Reader)   { r.stdin = in }
func (r *tcrRun) SetStdout(out io.Writer) { r.stdout = out }
func (r *tcrRun) SetStderr(err io.Writer) { r.stderr = err }

// Run performs: test command, then on success save + stage-all + commit,
// on failure discard all local modifications. An empty test command is a
// failure with no side effects. Waits for enter so the user can read the
// command output before the display is rebuilt.
func (r *tcrRun) Run() error {
	r.result = check.Run(context.Background(), r.command, r.stdout, r.stderr)

	switch {
	case errors.Is(r.result.Err, check.ErrNoCommand):
		fmt.Fprintln(r.stdout, "No test command set. Press T in the task list to configure one.")

	case r.result.Passed:
		fmt.Fprintln(r.stdout, "Tests passed.")
		if r.saveErr = store.Save(r.taskFile, r.tasks); r.saveErr != nil {
			fmt.Fprintf(r.stderr, "Could not save tasks, not committing: %v\n", r.saveErr)
			break
		}
		if r.message == "" {
			// Nothing selected to commit against.
			break
		}
		if r.commitErr = r.git.CommitAll(r.message); r.commitErr != nil {
			fmt.Fprintf(r.stderr, "Commit failed: %v\n", r.commitErr)
		} else {
			fmt.Fprintf(r.stdout, "Committed: %s\n", r.message)
		}

	default:
		fmt.Fprintln(r.stdout, "Tests failed, reverting local changes.")
		if r.revertErr = r.git.DiscardAll(); r.revertErr != nil {
			fmt.Fprintf(r.stderr, "Revert failed: %v\n", r.revertErr)
		}
	}

	fmt.Fprint(r.stdout, "Press enter to return to the task list...")
	_, _ = bufio.NewReader(r.stdin).ReadString('\n')
	return nil
}

// newTCRRun snapshots the model state the suspended run needs. The commit
// message embeds the selected task; with no tasks there is nothing to
// commit against and the message stays empty.
func (m Model) newTCRRun() *tcrRun {
	run := &tcrRun{
		command:  m.testCommand,
		taskFile: m.taskFile,
		tasks:    m.Tasks(),
		git:      m.git,
	}
	if len(m.tasks) > 0 {
		run.message = fmt.Sprintf("TCR: completed task %q", m.tasks[m.selected].Description)
	}
	return run
}

// startTCR suspends the display and runs the test-and-commit sequence.
func (m Model) startTCR() (tea.Model, tea.Cmd) {
	run := m.newTCRRun()
	m.logger.Info("running test command", "command", m.testCommand)
	return m, tea.Exec(run, func(err error) tea.Msg {
		return tcrDoneMsg{run: run, err: err}
	})
}

// finishTCR turns the run outcome into a status line message.
func (m Model) finishTCR(msg tcrDoneMsg) Model {
	if msg.err != nil {
		m.fail(fmt.Errorf("test run: %w", msg.err))
		return m
	}

	run := msg.run
	switch {
	case errors.Is(run.result.Err, check.ErrNoCommand):
		m.status = "no test command set (press T)"
		m.statusOK = false

	case run.result.Passed && run.saveErr != nil:
		m.fail(run.saveErr)

	case run.result.Passed && run.commitErr != nil:
		m.status = fmt.Sprintf("tests passed but commit failed: %v", run.commitErr)
		m.statusOK = false
		m.logger.Warn("commit failed", "err", run.commitErr)

	case run.result.Passed && run.message == "":
		m.setStatus("tests passed")

	case run.result.Passed:
		m.setStatus("tests passed, committed")
		m.logger.Info("tcr commit", "message", run.message, "duration", run.result.Duration)

	case run.revertErr != nil:
		m.status = fmt.Sprintf("tests failed and revert failed: %v", run.revertErr)
		m.statusOK = false
		m.logger.Error("revert failed", "err", run.revertErr)

	default:
		m.status = "tests failed, local changes reverted"
		m.statusOK = false
		m.logger.Info("tcr revert", "command", run.command, "duration", run.result.Duration)
	}
	return m
}
