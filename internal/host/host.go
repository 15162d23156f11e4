// Package host is a line-oriented stand-in for a game server. It decodes
// JSON events, feeds them to a Randomizer and writes what happened as JSON.
//
// Input, one object per line:
//
//	{"type":"spawn","entity":{"id":"1","name":"Zombie","world":"world"},"reason":"NATURAL"}
//	{"type":"chunkload","world":"world","entities":[{"id":"2","name":"Cow"}]}
//	{"type":"command","args":["reload"],"permissions":["mobsizerandomizer.reload"]}
//	{"type":"tabcomplete","args":["re"],"permissions":["mobsizerandomizer.reload"]}
package host

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bft-labs/mobscale/internal/config"
	"github.com/bft-labs/mobscale/pkg/mobscale"
)

// Event is one input line.
type Event struct {
	Type        string    `json:"type"`
	Entity      *Entity   `json:"entity,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	World       string    `json:"world,omitempty"`
	Entities    []*Entity `json:"entities,omitempty"`
	Args        []string  `json:"args,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
}

// Result is one output line.
type Result struct {
	Type     string   `json:"type"`
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Scale    *float64 `json:"scale,omitempty"`
	Handled  *bool    `json:"handled,omitempty"`
	Count    *int     `json:"count,omitempty"`
	Messages []string `json:"messages,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Entity implements mobscale.Entity over decoded JSON.
type Entity struct {
	ID     string `json:"id"`
	Label  string `json:"name"`
	Where  string `json:"world"`
	Player bool   `json:"player"`
	Dead   bool   `json:"dead"`

	scale   float64
	applied bool
}

func (e *Entity) Name() string   { return e.Label }
func (e *Entity) World() string  { return e.Where }
func (e *Entity) IsPlayer() bool { return e.Player }
func (e *Entity) IsLiving() bool { return !e.Dead }

func (e *Entity) SetScale(s float64) {
	e.scale = s
	e.applied = true
}

// sender collects replies for one command line.
type sender struct {
	perms    map[string]bool
	messages []string
}

func newSender(perms []string) *sender {
	s := &sender{perms: make(map[string]bool, len(perms))}
	for _, p := range perms {
		s.perms[p] = true
	}
	return s
}

func (s *sender) HasPermission(p string) bool { return s.perms[p] }
func (s *sender) SendMessage(msg string)      { s.messages = append(s.messages, msg) }

// Run processes events from in until EOF or ctx is done. Malformed lines
// produce an error result and do not stop the loop.
func Run(ctx context.Context, r *mobscale.Randomizer, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			if err := enc.Encode(Result{Type: "error", Error: fmt.Sprintf("decode event: %v", err)}); err != nil {
				return err
			}
			continue
		}
		for _, res := range Handle(r, ev) {
			if err := enc.Encode(res); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

// Handle applies one event and returns the results to report.
func Handle(r *mobscale.Randomizer, ev Event) []Result {
	switch strings.ToLower(ev.Type) {
	case "spawn":
		if ev.Entity == nil {
			return []Result{{Type: "error", Error: "spawn event without entity"}}
		}
		reason := config.SpawnDefault
		if ev.Reason != "" {
			parsed, err := config.ParseSpawnReason(ev.Reason)
			if err != nil {
				return []Result{{Type: "error", Error: err.Error()}}
			}
			reason = parsed
		}
		r.OnCreatureSpawn(mobscale.SpawnEvent{Entity: ev.Entity, Reason: reason})
		return []Result{entityResult(ev.Entity)}

	case "chunkload":
		entities := make([]mobscale.Entity, 0, len(ev.Entities))
		for _, e := range ev.Entities {
			if e != nil {
				entities = append(entities, e)
			}
		}
		n := r.OnChunkLoad(mobscale.ChunkLoadEvent{World: ev.World, Entities: entities})
		results := []Result{{Type: "chunkload", Count: &n}}
		for _, e := range ev.Entities {
			if e != nil && e.applied {
				results = append(results, entityResult(e))
			}
		}
		return results

	case "command":
		s := newSender(ev.Permissions)
		handled := r.Execute(s, ev.Args)
		return []Result{{Type: "command", Handled: &handled, Messages: s.messages}}

	case "tabcomplete":
		s := newSender(ev.Permissions)
		return []Result{{Type: "tabcomplete", Messages: r.TabComplete(s, ev.Args)}}

	default:
		return []Result{{Type: "error", Error: fmt.Sprintf("unknown event type %q", ev.Type)}}
	}
}

func entityResult(e *Entity) Result {
	res := Result{Type: "skipped", ID: e.ID, Name: e.Label}
	if e.applied {
		scale := e.scale
		res.Type = "scaled"
		res.Scale = &scale
	}
	return res
}
