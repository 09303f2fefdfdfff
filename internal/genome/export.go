package genome

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteFile serializes the genome as an indented flat JSON object at
// path. The key set is exactly what the simulator expects as reseed
// input; no validation against the consumer's schema happens here, so a
// key rename on either side only surfaces when the simulator reads the
// artifact.
func (g Genome) WriteFile(path string) error {
	data, err := json.MarshalIndent(g, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode genome: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write genome to %s: %w", path, err)
	}
	return nil
}
