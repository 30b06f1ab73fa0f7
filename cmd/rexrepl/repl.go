package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/rexa/fsm/dot"
	"github.com/npillmayer/rexa/fsm/subset"
	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/rexa/fsm/thompson"
	"github.com/npillmayer/rexa/internal/cli"
	"github.com/npillmayer/rexa/regex"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	var initFile string

	cmd := &cobra.Command{
		Use:   "rexrepl [regex]",
		Short: "Interactive sandbox for regular expressions and their automata",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pterm.Info.Println("Welcome to rexrepl")
			repl, err := readline.New("rexa> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			intp := &Intp{repl: repl, out: os.Stdout}
			if len(args) > 0 {
				if _, err := intp.Eval(args[0]); err != nil {
					return err
				}
			}
			intp.loadInitFile(initFile)
			tracer().Infof("Quit with <ctrl>D")
			intp.REPL()
			return nil
		},
	}

	cmd.Flags().StringVar(&initFile, "init", "", "file of regular expressions to evaluate first")
	cli.AddTraceFlag(cmd)

	return cmd
}

// Intp is our interpreter object
type Intp struct {
	lastInput string
	nfa       *table.Automaton
	dfa       *table.Automaton
	repl      *readline.Instance
	out       io.Writer
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			pterm.Error.Println(fmt.Sprintf("line %d: %s", lineno, cli.Diagnose(err)))
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(cli.Diagnose(err))
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval evaluates a line of input: either a command or a regular expression.
// It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.Execute(strings.Fields(line[1:]))
	}
	tree, err := regex.Parse(line)
	if err != nil {
		return false, err
	}
	intp.lastInput = line
	pterm.Info.Println("syntax tree")
	pterm.DefaultTree.WithRoot(treeFrom(tree)).Render()
	intp.nfa = table.FromNFA(thompson.Compile(tree))
	pterm.Info.Println(fmt.Sprintf("NFA, %d states", len(intp.nfa.States)))
	printTable(intp.nfa)
	if intp.dfa, err = subset.Determinize(intp.nfa); err != nil {
		return false, err
	}
	pterm.Info.Println(fmt.Sprintf("DFA, %d states", len(intp.dfa.States)))
	printTable(intp.dfa)
	return false, nil
}

var errNoAutomaton = errors.New("no automaton yet, please enter a regular expression first")

// Execute executes a REPL command.
func (intp *Intp) Execute(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("missing command, try :help")
	}
	cmd, args := args[0], args[1:]
	tracer().Debugf("command %s %v", cmd, args)
	switch cmd {
	case "quit", "q":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, ":dot <file>  :nfa <file>  :dfa <file>  :quit")
		return false, nil
	case "dot", "nfa", "dfa":
		if len(args) != 1 {
			return false, fmt.Errorf(":%s needs a file name", cmd)
		}
		if intp.dfa == nil {
			return false, errNoAutomaton
		}
		write := func(w io.Writer) error { return dot.Export(w, intp.dfa) }
		switch cmd {
		case "nfa":
			write = func(w io.Writer) error { return table.Write(w, intp.nfa) }
		case "dfa":
			write = func(w io.Writer) error { return table.Write(w, intp.dfa) }
		}
		if err := cli.WriteFile(args[0], write); err != nil {
			return false, err
		}
		pterm.Info.Println(fmt.Sprintf("%s of %q written to %s", cmd, intp.lastInput, args[0]))
		return false, nil
	}
	return false, fmt.Errorf("unknown command :%s, try :help", cmd)
}

// treeFrom converts a syntax tree into a tree for pterm.
func treeFrom(n regex.Node) pterm.TreeNode {
	ll := leveledNode(n, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledNode(n regex.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  regex.Label(n),
	})
	for _, ch := range regex.Children(n) {
		ll = leveledNode(ch, ll, level+1)
	}
	return ll
}

// printTable prints an automaton with one row per state. The start state is
// marked with an arrow, accepting states with an asterisk.
func printTable(a *table.Automaton) {
	inputs := a.Inputs()
	header := make([]string, 0, len(inputs)+1)
	header = append(header, "state")
	for _, in := range inputs {
		header = append(header, in.String())
	}
	data := pterm.TableData{header}
	for i, s := range a.States {
		name := s.Name
		if s.Accept {
			name = "*" + name
		}
		if i == 0 {
			name = "→ " + name
		}
		row := []string{name}
		for _, in := range inputs {
			row = append(row, strings.Join(a.Targets(s.Name, in), ","))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
