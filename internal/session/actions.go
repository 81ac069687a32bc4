package session

import (
	"fmt"
	"strings"
)

// Action is one of the user-facing zero-argument controls.
type Action string

const (
	ActionDelete        Action = "delete"
	ActionSortAll       Action = "sort-all"
	ActionSortSelection Action = "sort-selection"
	ActionSave          Action = "save"
	ActionParse         Action = "parse"
)

// Do runs a control against the session and returns a short status line.
func (s *Session) Do(action Action, paths Paths) (string, error) {
	switch action {
	case ActionDelete:
		n := s.list.DeleteSelected()
		if n == 0 {
			return "nothing selected", nil
		}
		return fmt.Sprintf("deleted %d", n), nil

	case ActionSortAll:
		s.list.SortAll()
		return "sorted all", nil

	case ActionSortSelection:
		if _, _, ok := s.list.Span(); !ok {
			return "nothing selected", nil
		}
		s.list.SortSelection()
		return "sorted selection", nil

	case ActionSave:
		report, err := s.Save(paths.Inout)
		if err != nil {
			return "", err
		}
		return "file saved: " + paths.Inout + ambiguityNote(report), nil

	case ActionParse:
		report, err := s.ExportAll(paths)
		if err != nil {
			return "", err
		}
		return "all files parsed: " + strings.Join(report.Files, ", ") + ambiguityNote(report), nil

	default:
		return "", fmt.Errorf("unknown action %q", action)
	}
}

func ambiguityNote(r Report) string {
	if len(r.Ambiguous) == 0 {
		return ""
	}
	names := make([]string, len(r.Ambiguous))
	for i, k := range r.Ambiguous {
		names[i] = k.String()
	}
	return " (ambiguous names: " + strings.Join(names, "; ") + ")"
}
