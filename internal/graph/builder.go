package graph

import (
	"math"
	"sort"

	"StockRadar/internal/model"
	"StockRadar/internal/reference"
)

// CorrelationThreshold is the minimum absolute correlation (exclusive)
// for a pair to receive a price-correlation link.
const CorrelationThreshold = 0.3

// NameResolver resolves an instrument code to a display name, returning
// the raw code when unknown.
type NameResolver interface {
	Name(code string) string
}

// Builder merges statistical correlations with curated industry chains
// into a single node/link graph.
type Builder struct {
	Lookup NameResolver
	Chains []reference.IndustryChain
}

// NewBuilder creates a Builder over the given lookup and chain table.
func NewBuilder(lookup NameResolver, chains []reference.IndustryChain) *Builder {
	return &Builder{Lookup: lookup, Chains: chains}
}

// Expand returns the working set: the requested codes plus every other
// member of any industry chain a requested code belongs to. Order is
// deterministic: request order first, then added members sorted by code.
func (b *Builder) Expand(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}

	var added []string
	for _, chain := range b.Chains {
		member := false
		for _, code := range codes {
			if _, ok := chain.Companies[code]; ok {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for code := range chain.Companies {
			if !seen[code] {
				seen[code] = true
				added = append(added, code)
			}
		}
	}
	sort.Strings(added)
	return append(out, added...)
}

// Build assembles the graph for the working set and its correlation
// matrix. Price-correlation links require |corr| strictly above the
// threshold; industry relationships are merged in afterwards, raising an
// existing link's value to max(existing, strength) rather than
// overwriting the statistical signal.
func (b *Builder) Build(codes []string, matrix model.CorrelationMatrix) *model.Graph {
	g := &model.Graph{
		Nodes:        make([]model.Node, 0, len(codes)),
		Links:        []model.Link{},
		Correlations: matrix,
	}

	for _, code := range codes {
		node := model.Node{ID: code, Name: b.resolveName(code), Group: 1}
		if chain, member, ok := b.chainMember(code); ok {
			node.Industry = chain.Name
			node.Role = member.Role
		}
		g.Nodes = append(g.Nodes, node)
	}

	index := make(map[[2]string]int) // unordered pair -> position in Links
	for i, c1 := range codes {
		for _, c2 := range codes[i+1:] {
			corr, ok := matrix[c1][c2]
			if !ok || math.Abs(corr) <= CorrelationThreshold {
				continue
			}
			index[pairKey(c1, c2)] = len(g.Links)
			g.Links = append(g.Links, model.Link{
				Source:      c1,
				Target:      c2,
				Value:       math.Abs(corr),
				Type:        model.LinkPriceCorrelation,
				Correlation: corr,
			})
		}
	}

	inSet := make(map[string]bool, len(codes))
	for _, code := range codes {
		inSet[code] = true
	}
	for _, chain := range b.Chains {
		for _, rel := range chain.Relationships {
			if !inSet[rel.Source] || !inSet[rel.Target] {
				continue
			}
			key := pairKey(rel.Source, rel.Target)
			if pos, ok := index[key]; ok {
				if rel.Strength > g.Links[pos].Value {
					g.Links[pos].Value = rel.Strength
				}
				g.Links[pos].Relationship = rel.Type
				continue
			}
			index[key] = len(g.Links)
			g.Links = append(g.Links, model.Link{
				Source:       rel.Source,
				Target:       rel.Target,
				Value:        rel.Strength,
				Type:         model.LinkIndustryChain,
				Relationship: rel.Type,
			})
		}
	}

	return g
}

// resolveName prefers the listing lookup, then chain member names, then
// the raw code.
func (b *Builder) resolveName(code string) string {
	if b.Lookup != nil {
		if name := b.Lookup.Name(code); name != code {
			return name
		}
	}
	if _, member, ok := b.chainMember(code); ok && member.Name != "" {
		return member.Name
	}
	return code
}

func (b *Builder) chainMember(code string) (reference.IndustryChain, reference.ChainMember, bool) {
	for _, chain := range b.Chains {
		if member, ok := chain.Companies[code]; ok {
			return chain, member, true
		}
	}
	return reference.IndustryChain{}, reference.ChainMember{}, false
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
