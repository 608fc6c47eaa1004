package model

// CommentForest assembles the flat comment rows of one topic into a
// forest of root comments, each carrying its direct replies in
// Children, recursively.
//
// rows must already be ordered by ascending CreatedAt; because the two
// passes below preserve input order, every Children list and the root
// list come out oldest-first without any per-level sort.
//
// A comment whose ParentID does not resolve to a comment in rows is
// dropped entirely: it is neither promoted to root nor attached
// anywhere. Callers relying on the rendered tree being complete must
// hand in the complete row set for the topic.
func CommentForest(rows []*Comment) []*Comment {
	byId := make(map[string]*Comment, len(rows))
	for _, c := range rows {
		c.Children = nil
		byId[c.Id] = c
	}

	roots := []*Comment{}
	for _, c := range rows {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byId[*c.ParentID]; ok {
			parent.Children = append(parent.Children, c)
		}
	}
	return roots
}
