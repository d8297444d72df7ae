package pipeline

import "errors"

// ErrNoApplicableStage is returned when the supervisor's plan requests no
// stage at all, which happens for unrecognized event types. The run is fatal
// for that invocation and produces no output.
var ErrNoApplicableStage = errors.New("no applicable stage for event")

// ErrNoReasoningStage is returned when a non-empty plan finishes its stages
// without ever reaching reasoning. No routing table entry produces such a
// plan, so hitting it means the table changed without a synthesis step.
var ErrNoReasoningStage = errors.New("no reasoning step in execution plan")
