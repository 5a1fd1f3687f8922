package overlay

import tea "github.com/charmbracelet/bubbletea"

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// pump feeds messages produced by cmd back into s until it goes quiet and
// returns the ClosedMsgs it emitted.
func pump(s *Session, cmd tea.Cmd) []ClosedMsg {
	var closed []ClosedMsg
	queue := runCmd(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if c, ok := msg.(ClosedMsg); ok {
			closed = append(closed, c)
			continue
		}
		var next tea.Cmd
		s, next = s.Update(msg)
		queue = append(queue, runCmd(next)...)
	}
	return closed
}
