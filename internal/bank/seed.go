package bank

// SeedSources returns the built-in template set covering the common
// questions asked of the project graph. Callers can extend or replace it
// with ETL-produced records via LoadSourceFile.
func SeedSources() []SourceRecord {
	return []SourceRecord{
		// Stakeholder queries
		{
			CanonicalQuestion: "list all stakeholders",
			QueryPattern:      "MATCH (s:Stakeholder) RETURN s.name, s.department, s.email ORDER BY s.name",
			Description:       "Get all stakeholders with their details",
		},
		{
			CanonicalQuestion: "who are the stakeholders",
			QueryPattern:      "MATCH (s:Stakeholder) RETURN s.name ORDER BY s.name",
			Description:       "Get stakeholder names",
		},
		{
			CanonicalQuestion: "show stakeholder roles",
			QueryPattern:      "MATCH (s:Stakeholder)-[:PLAYS_ROLE]->(r:Role) RETURN s.name, r.name, r.responsibilities",
			Description:       "Get stakeholders and their roles",
		},

		// Goals and constraints
		{
			CanonicalQuestion: "what are the goals",
			QueryPattern:      "MATCH (g:Goal) RETURN g.id, g.name, g.description ORDER BY g.name LIMIT 10",
			Description:       "Get project goals",
		},
		{
			CanonicalQuestion: "show project constraints",
			QueryPattern:      "MATCH (c:Constraint) RETURN c.id, c.name, c.description ORDER BY c.name LIMIT 10",
			Description:       "Get project constraints",
		},
		{
			CanonicalQuestion: "what are the requirements",
			QueryPattern:      "MATCH (g:Goal) RETURN g.name, g.description ORDER BY g.name",
			Description:       "Get project goals (requirements alternative)",
		},

		// Features
		{
			CanonicalQuestion: "what features exist",
			QueryPattern:      "MATCH (f:Feature) RETURN f.id, f.name, f.description ORDER BY f.name",
			Description:       "Get all features with descriptions",
		},

		// Domain knowledge
		{
			CanonicalQuestion: "what domain knowledge exists",
			QueryPattern:      "MATCH (dk:Domain_Knowledge) RETURN dk.area, dk.level, dk.description ORDER BY dk.area",
			Description:       "Get all domain knowledge areas",
		},
		{
			CanonicalQuestion: "who has domain knowledge",
			QueryPattern:      "MATCH (s:Stakeholder)-[:HAS_DOMAIN_KNOWLEDGE]->(dk:Domain_Knowledge) RETURN s.name, dk.area, dk.level",
			Description:       "Get stakeholders and their domain expertise",
		},
		{
			CanonicalQuestion: "who has expertise in an area",
			QueryPattern:      "MATCH (s:Stakeholder)-[:HAS_DOMAIN_KNOWLEDGE]->(dk:Domain_Knowledge) WHERE dk.area CONTAINS $area RETURN s.name, dk.area, dk.level",
			Description:       "Find experts for a named domain area",
		},

		// Project and budget
		{
			CanonicalQuestion: "project information",
			QueryPattern:      "MATCH (p:Project) RETURN p.name, p.description, p.start_date, p.end_date",
			Description:       "Get project details",
		},
		{
			CanonicalQuestion: "budget information",
			QueryPattern:      "MATCH (b:Budget) RETURN b.amount, b.currency, b.fiscal_year ORDER BY b.fiscal_year",
			Description:       "Get budget details",
		},
		{
			CanonicalQuestion: "whats in the budget",
			QueryPattern:      "MATCH (b:Budget)-[:HAS_LINE_ITEM]->(li:Line_Item) RETURN b.amount as budget, li.description, li.amount, li.category ORDER BY li.amount DESC",
			Description:       "Get budget breakdown with line items",
		},
		{
			CanonicalQuestion: "budget breakdown",
			QueryPattern:      "MATCH (li:Line_Item) RETURN li.description, li.amount, li.category ORDER BY li.amount DESC",
			Description:       "Get budget line items",
		},

		// Relationship queries
		{
			CanonicalQuestion: "requirements by stakeholder",
			QueryPattern:      "MATCH (s:Stakeholder)-[:RAISED_BY]-(r:Functional_Requirement) RETURN s.name, r.description",
			Description:       "Get requirements raised by each stakeholder",
		},
		{
			CanonicalQuestion: "features satisfying requirements",
			QueryPattern:      "MATCH (r:Functional_Requirement)-[:SATISFIED_BY]->(f:Feature) RETURN r.description, f.name",
			Description:       "Get which features satisfy which requirements",
		},
		{
			CanonicalQuestion: "show details for a requirement",
			QueryPattern:      "MATCH (r:Functional_Requirement) WHERE r.id = $id RETURN r.id, r.description, r.priority",
			Description:       "Get one requirement by its identifier",
		},

		// Quality scenarios
		{
			CanonicalQuestion: "what are the quality scenarios",
			QueryPattern:      "MATCH (qs:Qual_Scenario) RETURN qs.scenario, qs.description ORDER BY qs.scenario",
			Description:       "Get project quality scenarios",
		},

		// Analysis queries
		{
			CanonicalQuestion: "stakeholder expertise analysis",
			QueryPattern:      "MATCH (s:Stakeholder)-[:HAS_DOMAIN_KNOWLEDGE]->(dk:Domain_Knowledge) RETURN dk.area, count(s) as expert_count ORDER BY expert_count DESC",
			Description:       "Count experts per domain area",
		},
		{
			CanonicalQuestion: "requirement complexity",
			QueryPattern:      "MATCH (r:Functional_Requirement)-[:REQUIRES_DOMAIN_KNOWLEDGE]->(dk:Domain_Knowledge) RETURN r.description, count(dk) as knowledge_areas_needed ORDER BY knowledge_areas_needed DESC",
			Description:       "Requirements by complexity (domain knowledge needed)",
		},
	}
}
