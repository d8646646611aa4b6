// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import "strings"

// acNode is a trie node of the keyword automaton.
type acNode struct {
	children map[rune]*acNode
	failure  *acNode
	// rule is the lowest rule index of any keyword ending here or at a node
	// reachable through failure links, or -1.
	rule int
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode), rule: -1}
}

// keywordMatcher is an Aho-Corasick automaton over every keyword of a rule
// list. One pass over a name finds all keyword occurrences, and the match
// reported is the one belonging to the earliest rule.
//
// The automaton is immutable after construction and safe for concurrent use.
type keywordMatcher struct {
	root   *acNode
	labels []string
}

func newKeywordMatcher(rules []keywordRule) *keywordMatcher {
	m := &keywordMatcher{root: newACNode(), labels: make([]string, len(rules))}

	for i, r := range rules {
		m.labels[i] = r.label
		for _, kw := range r.keywords {
			m.add(strings.ToLower(kw), i)
		}
	}
	m.build()
	return m
}

func (m *keywordMatcher) add(keyword string, rule int) {
	if keyword == "" {
		return
	}
	node := m.root
	for _, ch := range keyword {
		next, ok := node.children[ch]
		if !ok {
			next = newACNode()
			node.children[ch] = next
		}
		node = next
	}
	if node.rule == -1 || rule < node.rule {
		node.rule = rule
	}
}

// build computes failure links breadth first and folds each node's failure
// target rule into its own so a search only has to look at one field.
func (m *keywordMatcher) build() {
	queue := make([]*acNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			failure := current.failure
			for failure != nil {
				if next, ok := failure.children[ch]; ok {
					child.failure = next
					break
				}
				failure = failure.failure
			}
			if child.failure == nil {
				child.failure = m.root
			}

			if fr := child.failure.rule; fr != -1 && (child.rule == -1 || fr < child.rule) {
				child.rule = fr
			}
		}
	}
}

// match returns the label of the earliest rule with a keyword occurring in
// text, which must already be lower-cased.
func (m *keywordMatcher) match(text string) (string, bool) {
	best := -1
	node := m.root

	for _, ch := range text {
		for node != m.root {
			if _, ok := node.children[ch]; ok {
				break
			}
			node = node.failure
		}
		if next, ok := node.children[ch]; ok {
			node = next
		}
		if node.rule != -1 && (best == -1 || node.rule < best) {
			best = node.rule
		}
	}

	if best == -1 {
		return "", false
	}
	return m.labels[best], true
}
