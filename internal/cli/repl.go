package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const helpText = `Commands:
  suggest                      SAFE & RISKY buckets + board + your roster needs
  board                        Show the top available board
  board_full                   Show the full draft board (all teams & picks)
  teams                        Show all team rosters
  needs                        Show roster needs for every team
  find <text>                  Search available players by substring
  me <name> | pick <name>      Record YOUR pick
  other <name>                 Record the on-clock team's pick
  add "Name" POS [TEAM] [rank] Add a missing player (default rank 1500)
  setrank <src> "Name" <n>     Update a rank live (src: espn|fp|ds|consensus)
  tag "Name" tag1,tag2         Replace a player's risk tags
  undo                         Undo the last pick
  save [path]                  Save a snapshot
  load [path]                  Restore the session's most recent snapshot
  help                         Show commands
  quit                         Exit`

var (
	addRe     = regexp.MustCompile(`^add\s+"([^"]+)"\s+([A-Za-z/]+)\s*([A-Za-z]{2,3})?\s*(\d+)?\s*$`)
	setrankRe = regexp.MustCompile(`(?i)^setrank\s+(\S+)\s+"([^"]+)"\s+(\d+)\s*$`)
	tagRe     = regexp.MustCompile(`(?i)^tag\s+"([^"]+)"\s+(.+?)\s*$`)
)

// stripQuotes removes one optional pair of surrounding double quotes
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Eval runs one REPL line against the session and returns the rendered
// output. quit is true for quit/exit. Failed commands render the error and
// leave the draft untouched.
func (s *Session) Eval(line string) (out string, quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	low := strings.ToLower(line)

	switch {
	case low == "quit" || low == "exit":
		return "Bye", true
	case low == "help":
		return helpText, false
	case low == "suggest":
		res, err := s.Suggest()
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		return renderSuggest(res), false
	case low == "board":
		return renderPlayerList(s.Board(s.Cfg.Suggest.BoardSize)), false
	case low == "board_full":
		return renderRosters(s.Rosters(), true), false
	case low == "teams":
		return renderRosters(s.Rosters(), false), false
	case low == "needs":
		return renderNeeds(s.NeedsAll()), false
	case low == "undo":
		rec, err := s.Undo()
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		return fmt.Sprintf("Undid pick #%d (%s)", rec.Overall, rec.PlayerKey), false
	case strings.HasPrefix(low, "find "):
		hits := s.Find(stripQuotes(line[5:]))
		if len(hits) == 0 {
			return "No matches.", false
		}
		return renderPlayerList(topOf(hits, 50)), false
	case strings.HasPrefix(low, "me "):
		return s.evalPick(stripQuotes(line[3:]), true), false
	case strings.HasPrefix(low, "pick "):
		return s.evalPick(stripQuotes(line[5:]), true), false
	case strings.HasPrefix(low, "other "):
		return s.evalPick(stripQuotes(line[6:]), false), false
	case strings.HasPrefix(low, "add"):
		return s.evalAdd(line), false
	case strings.HasPrefix(low, "setrank"):
		return s.evalSetRank(line), false
	case strings.HasPrefix(low, "tag"):
		return s.evalTag(line), false
	case low == "save" || strings.HasPrefix(low, "save "):
		loc, err := s.Save(strings.TrimSpace(line[4:]))
		if err != nil {
			return errorStyle.Render(err.Error()), false
		}
		return "Saved -> " + loc, false
	case low == "load" || strings.HasPrefix(low, "load "):
		if err := s.Load(strings.TrimSpace(line[4:])); err != nil {
			return errorStyle.Render(err.Error()), false
		}
		return fmt.Sprintf("Restored draft at pick #%d.", s.Engine.Pointer()+1), false
	}
	return "Unknown command. Type 'help' for commands.", false
}

func (s *Session) evalPick(name string, mine bool) string {
	if mine {
		rec, p, err := s.PickMine(name)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		return fmt.Sprintf("Recorded pick #%d: Team %d -> %s (%s)", rec.Overall, rec.TeamSlot, p.Name, p.Position)
	}
	rec, p, err := s.PickOther(name)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return fmt.Sprintf("Recorded pick #%d: Team %d -> %s (%s)", rec.Overall, rec.TeamSlot, p.Name, p.Position)
}

func (s *Session) evalAdd(line string) string {
	m := addRe.FindStringSubmatch(line)
	if m == nil {
		return `Usage: add "Name" POS [TEAM] [rank]`
	}
	name, pos, team := m[1], m[2], m[3]
	rank := 1500
	if m[4] != "" {
		rank, _ = strconv.Atoi(m[4])
	}
	p, err := s.Add(name, pos, team, rank)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return fmt.Sprintf("Added %s (%s, %s) with rank %d.", p.Name, p.Position, p.Team, rank)
}

func (s *Session) evalSetRank(line string) string {
	m := setrankRe.FindStringSubmatch(line)
	if m == nil {
		return `Usage: setrank [espn|fp|ds|consensus] "Name" N`
	}
	value, _ := strconv.Atoi(m[3])
	p, err := s.SetRank(m[1], m[2], value)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return fmt.Sprintf("Set %s rank for %s to %d.", strings.ToLower(m[1]), p.Name, value)
}

func (s *Session) evalTag(line string) string {
	m := tagRe.FindStringSubmatch(line)
	if m == nil {
		return `Usage: tag "Name" tag1,tag2`
	}
	p, err := s.Tag(m[1], strings.Split(m[2], ","))
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return fmt.Sprintf("Updated risk tags for %s -> %s", p.Name, strings.Join(p.RiskTags, ","))
}

// REPL reads commands line by line until quit or EOF
func (s *Session) REPL(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Type 'help' for commands.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nBye")
			return scanner.Err()
		}
		text, quit := s.Eval(scanner.Text())
		if text != "" {
			fmt.Fprintln(out, text)
		}
		if quit {
			return nil
		}
	}
}
