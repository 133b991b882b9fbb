package engine

import (
	"errors"
	"strings"

	"github.com/vk/sceneforge/internal/scene"
)

// ErrContractViolation matches every *ContractViolation through errors.Is.
var ErrContractViolation = errors.New("builder contract violation")

// ContractViolation reports a dependency graph no pass can process, such as
// a cycle. It aborts the pass.
type ContractViolation struct {
	// Cycle lists the nodes of a dependency cycle, the first node repeated
	// at the end. Empty for other violations.
	Cycle []*scene.Node
	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *ContractViolation) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrContractViolation.Error())
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	if len(e.Cycle) > 0 {
		sb.WriteString(": ")
		for i, n := range e.Cycle {
			if i > 0 {
				sb.WriteString(" -> ")
			}
			sb.WriteString(n.String())
		}
	}
	return sb.String()
}

// Is makes errors.Is(err, ErrContractViolation) hold.
func (e *ContractViolation) Is(target error) bool {
	return target == ErrContractViolation
}
