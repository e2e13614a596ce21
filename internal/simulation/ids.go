package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewScenarioID returns an id of the form sim_<unix millis>_<6 hex chars>.
func NewScenarioID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("sim_%d_%s", time.Now().UnixMilli(), suffix)
}
