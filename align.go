package shapeshifter

import "slices"

// slot is an element of an aligned sequence, either a value or a gap.
type slot[T any] struct {
	v   T
	gap bool
}

// align computes the global alignment of a and b with the highest total score using the Needleman-Wunsch
// algorithm. It returns both sequences padded with gaps to equal length, and the score of the alignment. When
// tracing back, a match or mismatch is preferred over an insertion into a, which is preferred over a deletion from a.
func align[T any](a, b []T, score func(T, T) float64, gap float64) ([]slot[T], []slot[T], float64) {
	n, m := len(a), len(b)
	M := make([][]float64, n+1)
	for i := range M {
		M[i] = make([]float64, m+1)
		M[i][0] = float64(i) * gap
	}
	for j := 0; j <= m; j++ {
		M[0][j] = float64(j) * gap
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			match := M[i-1][j-1] + score(a[i-1], b[j-1])
			insert := M[i][j-1] + gap
			del := M[i-1][j] + gap
			M[i][j] = max(match, insert, del)
		}
	}

	var sa, sb []slot[T]
	i, j := n, m
	for 0 < i || 0 < j {
		if 0 < i && 0 < j && M[i][j] == M[i-1][j-1]+score(a[i-1], b[j-1]) {
			sa = append(sa, slot[T]{v: a[i-1]})
			sb = append(sb, slot[T]{v: b[j-1]})
			i--
			j--
		} else if 0 < j && (i == 0 || M[i][j] == M[i][j-1]+gap) {
			sa = append(sa, slot[T]{gap: true})
			sb = append(sb, slot[T]{v: b[j-1]})
			j--
		} else {
			sa = append(sa, slot[T]{v: a[i-1]})
			sb = append(sb, slot[T]{gap: true})
			i--
		}
	}
	slices.Reverse(sa)
	slices.Reverse(sb)
	return sa, sb, M[n][m]
}

// gapStreak is a maximal run of gaps in an aligned sequence, placed before the value at index i of the
// original sequence.
type gapStreak struct {
	i, n int
}

func gapStreaks[T any](slots []slot[T]) []gapStreak {
	streaks := []gapStreak{}
	i, n := 0, 0
	for _, s := range slots {
		if s.gap {
			n++
			continue
		} else if 0 < n {
			streaks = append(streaks, gapStreak{i, n})
			n = 0
		}
		i++
	}
	if 0 < n {
		streaks = append(streaks, gapStreak{i, n})
	}
	return streaks
}
