package system

import (
	"fmt"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"gopkg.in/yaml.v3"
)

type snapshot struct {
	Time    float64         `yaml:"time"`
	Focus   string          `yaml:"focus"`
	Host    string          `yaml:"host,omitempty"`
	Enemies []enemySnapshot `yaml:"enemies"`
}

type enemySnapshot struct {
	Entity       string  `yaml:"entity"`
	State        string  `yaml:"state"`
	Faction      string  `yaml:"faction"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Stability    float64 `yaml:"stability,omitempty"`
	EffectiveMax float64 `yaml:"effective_max,omitempty"`
	Health       float64 `yaml:"health,omitempty"`
}

// Snapshot renders the enemies and possession state of w as YAML.
func Snapshot(w *ecs.World, arbiter *Arbiter) ([]byte, error) {
	if w == nil || arbiter == nil {
		return nil, fmt.Errorf("snapshot: nil world or arbiter")
	}

	snap := snapshot{
		Time:  w.Now(),
		Focus: arbiter.Focus().String(),
	}
	if arbiter.IsPossessing() {
		snap.Host = arbiter.Host().String()
	}

	for _, e := range w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind()) {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		es := enemySnapshot{
			Entity:  e.String(),
			State:   enemy.State.String(),
			Faction: enemy.Faction.String(),
			X:       t.X,
			Y:       t.Y,
		}
		if p, ok := ecs.Get(w, e, component.PossessableComponent.Kind()); ok {
			es.Stability = p.Stability.Current
			es.EffectiveMax = p.Stability.EffectiveMax
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			es.Health = h.Current
		}
		snap.Enemies = append(snap.Enemies, es)
	}

	out, err := yaml.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return out, nil
}
