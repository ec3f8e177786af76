package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"dudu/internal/task"
)

// Parse turns one input line into a command. An unrecognized keyword is not
// an error; it becomes an Invalid command so the caller can show a hint
// instead of failing. Errors cover the argument problems of a recognized
// keyword, classified by the task package sentinels.
func Parse(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)
	keyword, rest := splitKeyword(trimmed)

	switch strings.ToLower(keyword) {
	case "bye":
		return Bye{}, nil
	case "list":
		return List{}, nil
	case "help":
		return Help{}, nil
	case "undo":
		return Undo{}, nil
	case "trash":
		return Trash{}, nil
	case "todo":
		t, err := task.NewToDo(rest)
		if err != nil {
			return nil, err
		}
		return Add{Task: t}, nil
	case "deadline":
		return parseDeadline(rest)
	case "event":
		return parseEvent(rest)
	case "mark":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Mark{Index: i}, nil
	case "unmark":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Unmark{Index: i}, nil
	case "delete":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Delete{Index: i}, nil
	case "find":
		query := strings.TrimSpace(rest)
		if query == "" {
			return nil, fmt.Errorf("%w: find needs a search query", task.ErrMissingDescription)
		}
		return Find{Query: query}, nil
	default:
		return Invalid{Input: trimmed}, nil
	}
}

// splitKeyword splits on the first whitespace run: "deadline  x /by y" gives
// ("deadline", "x /by y").
func splitKeyword(s string) (keyword, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// parseDeadline validates in a fixed order: content present, /by marker
// present, description present, date text present, then date validity. Each
// step has its own error kind so the failure message names the actual gap.
func parseDeadline(rest string) (Command, error) {
	if strings.TrimSpace(rest) == "" {
		return nil, fmt.Errorf("%w: deadline needs a description", task.ErrMissingDescription)
	}
	if !strings.Contains(rest, "/by") {
		return nil, fmt.Errorf("%w: use deadline <description> /by <yyyy-mm-dd>", task.ErrInvalidFormat)
	}
	description, byText, _ := strings.Cut(rest, "/by")
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: deadline needs a description before /by", task.ErrMissingDescription)
	}
	byText = strings.TrimSpace(byText)
	if byText == "" {
		return nil, fmt.Errorf("%w: deadline needs a date after /by", task.ErrMissingDateTime)
	}
	by, err := task.ParseDate(byText)
	if err != nil {
		return nil, err
	}
	t, err := task.NewDeadline(description, by)
	if err != nil {
		return nil, err
	}
	return Add{Task: t}, nil
}

func parseEvent(rest string) (Command, error) {
	if strings.TrimSpace(rest) == "" {
		return nil, fmt.Errorf("%w: event needs a description", task.ErrMissingDescription)
	}
	fromAt := strings.Index(rest, "/from")
	if fromAt < 0 || !strings.Contains(rest[fromAt:], "/to") {
		return nil, fmt.Errorf("%w: use event <description> /from <yyyy-mm-dd> /to <yyyy-mm-dd>", task.ErrInvalidFormat)
	}
	description, span, _ := strings.Cut(rest, "/from")
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: event needs a description before /from", task.ErrMissingDescription)
	}
	fromText, toText, _ := strings.Cut(span, "/to")
	fromText = strings.TrimSpace(fromText)
	toText = strings.TrimSpace(toText)
	if fromText == "" || toText == "" {
		return nil, fmt.Errorf("%w: event needs dates after /from and /to", task.ErrMissingDateTime)
	}
	from, err := task.ParseDate(fromText)
	if err != nil {
		return nil, err
	}
	to, err := task.ParseDate(toText)
	if err != nil {
		return nil, err
	}
	t, err := task.NewEvent(description, from, to)
	if err != nil {
		return nil, err
	}
	return Add{Task: t}, nil
}

// parseIndex pulls the digits out of rest, tolerating stray text around the
// number, and converts the 1-based count to a 0-based index. "no number at
// all" and "number below 1" are reported separately.
func parseIndex(rest string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, rest)
	if digits == "" {
		return 0, fmt.Errorf("%w: no task number found", task.ErrInvalidIndex)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", task.ErrInvalidIndex, rest)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: task numbers start at 1", task.ErrInvalidIndex)
	}
	return n - 1, nil
}
