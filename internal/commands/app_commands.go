package commands

import (
	"fmt"
	"strconv"

	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/plugin"
)

// RegisterAppCommands registers built-in commands: :w, :q, :wq, :undo,
// :redo and :history.
func RegisterAppCommands(api plugin.EditorAPI, hist HistoryAPI) {
	cmds := map[string]plugin.CommandFunc{
		"w": func(args []string) error {
			if err := api.SaveNote(); err != nil {
				return err
			}
			api.SetStatusMessage("Saved %s", api.GetBufferFilePath())
			return nil
		},
		"q": func(args []string) error {
			hist.RequestQuit()
			return nil
		},
		"wq": func(args []string) error {
			if err := api.SaveNote(); err != nil {
				return err
			}
			hist.RequestQuit()
			return nil
		},
		"undo": func(args []string) error {
			return repeat(args, hist.Undo)
		},
		"redo": func(args []string) error {
			return repeat(args, hist.Redo)
		},
		"history": func(args []string) error {
			return historyCommand(api, hist, args)
		},
	}

	for _, name := range []string{"w", "q", "wq", "undo", "redo", "history"} {
		if err := api.RegisterCommand(name, cmds[name]); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

// repeat runs step up to n times (args[0], default 1), stopping early when
// there is nothing left.
func repeat(args []string, step func() (bool, error)) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("count must be a positive number, got '%s'", args[0])
		}
		n = v
	}
	for i := 0; i < n; i++ {
		ok, err := step()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

// historyCommand handles ":history", ":history clear" and ":history max N".
func historyCommand(api plugin.EditorAPI, hist HistoryAPI, args []string) error {
	if len(args) == 0 {
		info := hist.HistoryInfo()
		limit := "unbounded"
		if m := hist.HistoryMaxSize(); m >= 0 {
			limit = strconv.Itoa(m)
		}
		api.SetStatusMessage("History: step %d of %d (max %s)", info.Position, info.Count, limit)
		return nil
	}

	switch args[0] {
	case "clear":
		hist.ClearHistory()
		api.SetStatusMessage("History cleared")
		return nil
	case "max":
		if len(args) != 2 {
			return fmt.Errorf("usage: history max <n|-1>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid max size '%s': %w", args[1], err)
		}
		hist.SetHistoryMaxSize(n)
		if n < 0 {
			api.SetStatusMessage("History unbounded")
			return nil
		}
		api.SetStatusMessage("History limited to %d, %d steps kept", n, hist.HistoryInfo().Count)
		return nil
	default:
		return fmt.Errorf("unknown history subcommand '%s'", args[0])
	}
}
