package main

import (
	"bufio"
	"fmt"
	"os"

	"dudu/internal/command"
	"dudu/internal/config"
	"dudu/internal/storage"
	"dudu/internal/task"
	"dudu/internal/trash"
	"dudu/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// An optional positional argument overrides the configured task file.
	dataPath := cfg.DataPath
	if len(os.Args) > 1 {
		dataPath = os.Args[1]
	}

	store, err := storage.Open(dataPath)
	if err != nil {
		fmt.Printf("failed to open task file: %v\n", err)
		os.Exit(1)
	}
	tasks, err := store.Load()
	if err != nil {
		fmt.Printf("failed to load tasks: %v\n", err)
		os.Exit(1)
	}

	archive, err := trash.Open(cfg.TrashDBPath)
	if err != nil {
		fmt.Printf("failed to open trash archive: %v\n", err)
		os.Exit(1)
	}
	defer archive.Close()

	console := ui.NewConsole(os.Stdout, cfg.WrapWidth)
	session := command.NewSession(task.NewList(tasks), store, archive, console)

	if cfg.UI == config.UITUI {
		if err := ui.RunTUI(session); err != nil {
			fmt.Printf("error running program: %v\n", err)
			os.Exit(1)
		}
		return
	}

	console.ShowWelcome()
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if session.Run(sc.Text()) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Printf("error reading input: %v\n", err)
		os.Exit(1)
	}
	console.ShowGoodbye()
}
