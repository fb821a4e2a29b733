// Package directory is a file-backed actor directory. The real directory is
// owned by an external collaborator; this one reads a YAML roster so a
// coordinator can run the day without it.
package directory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"timeline-lab/contract"
	"timeline-lab/domain/authority"
	"timeline-lab/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	_        contract.IActorDirectory = (*Directory)(nil)
	validate                          = validator.New()
)

// File is the on-disk roster.
//
//	actors:
//	  - ref: alice
//	    role: coordinator
//	    name: Alice
type File struct {
	Actors []authority.Actor `yaml:"actors" validate:"dive"`
}

type Directory struct {
	mu     sync.RWMutex
	actors map[string]authority.Actor
}

func New(actors ...authority.Actor) *Directory {
	d := &Directory{actors: make(map[string]authority.Actor, len(actors))}
	for _, a := range actors {
		d.actors[a.Ref] = a
	}
	return d
}

// LoadFile reads and validates a YAML roster.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read actor directory %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Directory, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode actor directory: %w", err)
	}
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid actor directory: %w", err)
	}
	return New(file.Actors...), nil
}

func (d *Directory) Resolve(_ context.Context, actorRef string) (authority.Actor, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	actor, ok := d.actors[actorRef]
	if !ok {
		return authority.Actor{}, errors.New(errors.CodeNotFound, "actor %q is unknown", actorRef)
	}
	return actor, nil
}

// Put adds or replaces an actor.
func (d *Directory) Put(actor authority.Actor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actors[actor.Ref] = actor
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.actors)
}
