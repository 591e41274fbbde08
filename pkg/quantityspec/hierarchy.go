package quantityspec

func parentOf(q Spec) Spec {
	if n, ok := q.(*Named); ok && n.parent != nil {
		return n.parent
	}
	return nil
}

// PathLength counts q and its ancestors.
func PathLength(q Spec) int {
	n := 1
	for p := parentOf(q); p != nil; p = parentOf(p) {
		n++
	}
	return n
}

func advance(q Spec, steps int) Spec {
	for ; steps > 0 && q != nil; steps-- {
		q = parentOf(q)
	}
	return q
}

// equalLengthPaths brings a and b to the same depth.
func equalLengthPaths(a, b Spec) (Spec, Spec) {
	la, lb := PathLength(a), PathLength(b)
	if la > lb {
		return advance(a, la-lb), b
	}
	return a, advance(b, lb-la)
}

// HaveCommonBase reports whether a and b share an ancestor, themselves included.
func HaveCommonBase(a, b Spec) bool {
	return CommonBase(a, b) != nil
}

// CommonBase returns the closest shared ancestor of a and b, or nil.
func CommonBase(a, b Spec) Spec {
	a, b = equalLengthPaths(a, b)
	for a != nil && b != nil {
		if Equal(a, b) {
			return a
		}
		a, b = parentOf(a), parentOf(b)
	}
	return nil
}

// IsChildOf reports whether parent is child itself or one of its ancestors.
func IsChildOf(child, parent Spec) bool {
	if Equal(child, parent) {
		return true
	}
	lc, lp := PathLength(child), PathLength(parent)
	if lp > lc {
		return false
	}
	c := advance(child, lc-lp)
	return c != nil && Equal(c, parent)
}

// KindTreeRoot returns the root of the kind tree q belongs to. Derived specs
// map every ingredient to its root and multiply again.
func KindTreeRoot(q Spec) Spec {
	switch t := q.(type) {
	case Kind:
		return t.spec
	case *Named:
		for n := t; ; n = n.parent {
			if n.kind || n.parent == nil {
				return n
			}
		}
	case Derived:
		fs := make([]Factor, len(t.factors))
		for i, f := range t.factors {
			fs[i] = Factor{Spec: KindTreeRoot(f.Spec).(*Named), Exp: f.Exp}
		}
		return product(fs)
	}
	return q
}

// GetKind returns the kind q belongs to.
func GetKind(q Spec) Kind {
	return KindOf(KindTreeRoot(q))
}

// nestedKind reports whether inner is a distinct kind declared inside the
// kind tree of outer, such as angular_measure inside dimensionless.
func nestedKind(inner, outer Spec) bool {
	return !Equal(GetKind(outer), GetKind(inner)) && IsChildOf(inner, KindTreeRoot(outer))
}
