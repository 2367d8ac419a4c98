package tournament

import "github.com/mahotsav/championship-admin/internal/domain/team"

const (
	// DefaultTopN is the promotion size used when none is requested.
	DefaultTopN = 4
	// PoolSize is how many teams the server places in each draw-sheet pool.
	PoolSize = 8
)

// Pool is one server-computed partition of the team collection. It has no
// identity of its own; Number is its 1-based position in the draw sheet.
type Pool struct {
	Number int
	Teams  []team.Team
}

// PromotionResult is the ranked subset of teams advancing, as sent by the server.
type PromotionResult struct {
	TopN  int
	Teams []team.Team
}

// NoTeamsToDraw reports whether a draw sheet has nothing to show: no pools,
// or only empty ones.
func NoTeamsToDraw(pools []Pool) bool {
	for _, pool := range pools {
		if len(pool.Teams) > 0 {
			return false
		}
	}
	return true
}

func NormalizeTopN(topN int) int {
	if topN <= 0 {
		return DefaultTopN
	}
	return topN
}

// Partition batches teams in order into pools of size. The server owns this
// rule; it lives here so an in-process backend can reproduce it.
func Partition(teams []team.Team, size int) []Pool {
	if size <= 0 {
		size = PoolSize
	}
	pools := make([]Pool, 0, (len(teams)+size-1)/size)
	for start := 0; start < len(teams); start += size {
		end := start + size
		if end > len(teams) {
			end = len(teams)
		}
		chunk := make([]team.Team, end-start)
		copy(chunk, teams[start:end])
		pools = append(pools, Pool{Number: len(pools) + 1, Teams: chunk})
	}
	return pools
}

// Promote returns the first topN teams of an already ranked collection.
func Promote(ranked []team.Team, topN int) PromotionResult {
	topN = NormalizeTopN(topN)
	n := topN
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]team.Team, n)
	copy(out, ranked[:n])
	return PromotionResult{TopN: topN, Teams: out}
}
