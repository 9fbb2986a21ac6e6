package life3d

import (
	"lifegrid/internal/core"
	"lifegrid/pkg/torus"
)

// Sim adapts an Engine to the driver's core.Sim contract.
type Sim struct {
	cfg Config
	eng *Engine
}

// NewSim builds, configures and randomly populates a 3D sim.
func NewSim(cfg Config) (*Sim, error) {
	s := &Sim{cfg: cfg}
	if err := s.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life3d" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	return core.Size{W: s.cfg.Width, H: s.cfg.Height, D: s.cfg.Depth}
}

// Engine exposes the wrapped engine.
func (s *Sim) Engine() *Engine { return s.eng }

// Reset rebuilds the grid from scratch with the provided seed.
func (s *Sim) Reset(seed int64) error {
	s.cfg.Seed = seed
	s.eng = New(s.cfg.Engine())
	if err := s.eng.Configure(s.cfg.Width, s.cfg.Height, s.cfg.Depth); err != nil {
		return err
	}
	return s.eng.Populate(torus.Random)
}

// Step advances one generation.
func (s *Sim) Step() (torus.Report, error) { return s.eng.Advance() }

// Cells exposes the current grid values.
func (s *Sim) Cells() []uint8 { return s.eng.Cells() }

// Parameters describes the configuration the sim is running with.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.IntParam("d", "Depth", s.cfg.Depth),
			},
		},
		{
			Name:    "Rule",
			Summary: "4555 (Bays 1992)",
			Params: []core.Parameter{
				core.IntParam("survive_min", "Survive min", torus.Bays4555.SurviveMin),
				core.IntParam("survive_max", "Survive max", torus.Bays4555.SurviveMax),
				core.IntParam("birth", "Birth", torus.Bays4555.Birth),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.StringParam("populate", "Populate", torus.Random.String()),
				core.FloatParam("threshold", "Alive threshold", s.cfg.Threshold),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name:   "Runtime",
			Params: []core.Parameter{core.IntParam("workers", "Workers", s.cfg.Workers)},
		},
	}}
}

func init() {
	core.Register("life3d", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewSim(c)
	})
}
