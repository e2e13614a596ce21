package model

import (
	"github.com/google/uuid"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every table the server migrates.
func All() []any {
	return []any{
		&User{},
		&SimulationSession{},
		&GeneratedScenario{},
		&Decision{},
		&Progress{},
		&CaseStudy{},
	}
}
