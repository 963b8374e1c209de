package board

// Legality reports the verdict for m as if it were played next. The
// call never mutates the Board (§4.3). Two-pass structure: first
// collect hypothetical liberties and capture candidates by visiting
// each neighbour once, then apply capture hashing — so a capture seen
// via more than one adjacency is never XORed twice.
func (b *Board) Legality(m Move) Verdict {
	if m.Pass {
		return Legal
	}

	p := toPadded(m.Point)
	if b.cellAt(p) != Empty {
		return NonEmpty
	}

	c := m.Color
	opp := c.Opposite()

	k := b.key ^ b.zkey(p, c)

	ownLiberties := make(map[Point]struct{})
	connectsOwn := false
	captureRoots := make(map[Point]struct{})

	for _, off := range neighborOffsets {
		n := Point{X: p.X + off.X, Y: p.Y + off.Y}
		switch b.cellAt(n) {
		case Empty:
			ownLiberties[n] = struct{}{}
		case c:
			connectsOwn = true
			for l := range b.gi.libertySet(n) {
				ownLiberties[l] = struct{}{}
			}
		case opp:
			if b.gi.libertyCount(n) == 1 {
				captureRoots[b.gi.find(n)] = struct{}{}
			}
		}
	}

	if len(captureRoots) == 0 {
		delete(ownLiberties, p)
		if len(ownLiberties) == 0 {
			if b.ruleset.Suicide == SuicideDisallowed || !connectsOwn {
				return Suicidal
			}

			// Legal suicide: the played stone is not actually added, so
			// un-XOR it, then capture every adjacent same-color group.
			k ^= b.zkey(p, c)
			for _, off := range neighborOffsets {
				n := Point{X: p.X + off.X, Y: p.Y + off.Y}
				if b.cellAt(n) == c {
					captureRoots[b.gi.find(n)] = struct{}{}
				}
			}
		}
	}

	for r := range captureRoots {
		removedColor := b.cellAt(r)
		for s := range b.gi.members(r) {
			k ^= b.zkey(s, removedColor)
		}
	}

	k = b.postMoveKey(k, opp)

	switch b.ruleset.Ko {
	case SimpleKo:
		if len(b.keyHistory) >= 2 && b.keyHistory[len(b.keyHistory)-2] == k {
			return Ko
		}
	default: // PositionalSuperko, SituationalSuperko
		for _, h := range b.keyHistory {
			if h == k {
				return Ko
			}
		}
	}

	return Legal
}
