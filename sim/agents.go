package sim

// AgentPool holds the per-run state of every serving agent: the number of
// steps of work remaining on the call it is handling, 0 meaning idle. The
// pool is owned exclusively by one simulation run and reset at run start.
type AgentPool struct {
	remaining []int
}

// NewAgentPool creates a pool of n idle agents.
func NewAgentPool(n int) *AgentPool {
	return &AgentPool{remaining: make([]int, n)}
}

// Size returns the number of agents in the pool.
func (ap *AgentPool) Size() int {
	return len(ap.remaining)
}

// Advance moves every busy agent one step forward in its current call.
// Agents whose remaining work reaches 0 become idle immediately and are
// eligible for assignment in the same step.
func (ap *AgentPool) Advance() {
	for i := range ap.remaining {
		if ap.remaining[i] > 0 {
			ap.remaining[i]--
		}
	}
}

// AssignLowestIdle binds a call to the lowest-indexed idle agent, making it
// busy for serviceTime steps. Returns the agent index, or -1 if every agent
// is busy. The lowest-index rule keeps assignment deterministic for a given
// idle set.
func (ap *AgentPool) AssignLowestIdle(serviceTime int) int {
	for i := range ap.remaining {
		if ap.remaining[i] == 0 {
			ap.remaining[i] = serviceTime
			return i
		}
	}
	return -1
}

// BusyCount returns the number of agents currently handling a call.
func (ap *AgentPool) BusyCount() int {
	busy := 0
	for _, r := range ap.remaining {
		if r > 0 {
			busy++
		}
	}
	return busy
}

// IdleCount returns the number of agents available for assignment.
func (ap *AgentPool) IdleCount() int {
	return len(ap.remaining) - ap.BusyCount()
}
