package interview

import "github.com/prepmate/interview-backend/internal/entity"

// Profile is the static policy record for one interviewer persona. Profiles
// are read-only after init; prompt building and question fallback both key
// off them.
type Profile struct {
	Persona     entity.Persona
	Title       string
	Personality string
	// Criteria is the evaluation-criteria clause embedded into scoring prompts.
	Criteria string
	// FocusAreas are the five assessment bullets for generation prompts.
	FocusAreas []string
	// Guidance holds per-difficulty framing for generation prompts.
	Guidance map[entity.Difficulty]string
	// FallbackBank is the ordered stock of questions used when the provider
	// cannot deliver the requested count.
	FallbackBank []string
}

var profiles = map[entity.Persona]Profile{
	entity.PersonaHR: {
		Persona:     entity.PersonaHR,
		Title:       "HR",
		Personality: "Professional, empathetic, and focused on cultural alignment",
		Criteria:    "communication clarity, cultural fit, professional experience relevance",
		FocusAreas: []string{
			"Cultural fit and values alignment",
			"Communication and interpersonal skills",
			"Career goals and motivation",
			"Work experience and achievements",
			"Behavioral competencies",
		},
		Guidance: map[entity.Difficulty]string{
			entity.DifficultyEasy:   "Basic questions about background, motivation, and simple behavioral scenarios. Focus on straightforward experiences and clear yes/no situations.",
			entity.DifficultyMedium: "Moderate complexity questions involving situational judgment, team dynamics, and multi-step problem solving.",
			entity.DifficultyHard:   "Complex strategic thinking, conflict resolution, cultural transformation, and executive-level decision making scenarios.",
		},
		FallbackBank: []string{
			"Tell me about yourself and what motivates you professionally?",
			"Why are you interested in this role and our company?",
			"How would your previous colleagues describe working with you?",
			"What kind of work environment helps you do your best work?",
			"Tell me about a time you received difficult feedback. How did you respond?",
			"What are your career goals for the next three to five years?",
			"Describe a situation where you had to balance competing priorities at work?",
			"What values are most important to you in a team?",
			"Tell me about a time you went beyond your formal responsibilities?",
			"How do you maintain work-life balance during demanding periods?",
			"What would make you leave a job within the first year?",
			"What questions do you have about our culture?",
		},
	},
	entity.PersonaTechLead: {
		Persona:     entity.PersonaTechLead,
		Title:       "Technical Lead",
		Personality: "Analytical, detail-oriented, and technically rigorous",
		Criteria:    "technical accuracy, problem-solving approach, depth of knowledge",
		FocusAreas: []string{
			"Technical skills mentioned in resume",
			"Problem-solving and analytical abilities",
			"System design and architecture knowledge",
			"Coding experience and best practices",
			"Technology stack expertise",
		},
		Guidance: map[entity.Difficulty]string{
			entity.DifficultyEasy:   "Fundamental technical concepts, basic coding practices, and simple problem-solving scenarios. Avoid complex system design.",
			entity.DifficultyMedium: "Intermediate technical concepts, system design basics, debugging scenarios, and trade-off discussions.",
			entity.DifficultyHard:   "Advanced system architecture, scalability challenges, complex debugging, performance optimization, and technical leadership scenarios.",
		},
		FallbackBank: []string{
			"Walk me through the architecture of the most complex system you have built?",
			"How do you approach debugging an issue you have never seen before?",
			"Tell me about a technical decision you made that you later regretted?",
			"How do you decide between buying a solution and building it in-house?",
			"Describe how you ensure code quality on a team with mixed experience levels?",
			"How would you design a system that must handle a sudden tenfold traffic increase?",
			"What trade-offs do you consider when choosing a database for a new service?",
			"Tell me about a time you had to optimize a slow piece of code. What did you do?",
			"How do you keep your technical skills current?",
			"Describe your approach to reviewing a large pull request?",
			"What does production readiness mean to you?",
			"How do you handle technical disagreements within a team?",
		},
	},
	entity.PersonaBehavioral: {
		Persona:     entity.PersonaBehavioral,
		Title:       "Behavioral",
		Personality: "Insightful, probing, and focused on real examples",
		Criteria:    "specific examples, leadership qualities, situational handling",
		FocusAreas: []string{
			"Leadership abilities and experience",
			"Teamwork and collaboration skills",
			"Conflict resolution and negotiation",
			"Adaptability and change management",
			"Decision-making and strategic thinking",
		},
		Guidance: map[entity.Difficulty]string{
			entity.DifficultyEasy:   "Simple STAR method questions about common workplace situations. Focus on direct, uncomplicated scenarios.",
			entity.DifficultyMedium: "Complex behavioral scenarios requiring detailed analysis, leadership challenges, and cross-functional collaboration.",
			entity.DifficultyHard:   "High-stakes leadership situations, organizational change management, complex stakeholder management, and crisis leadership.",
		},
		FallbackBank: []string{
			"Tell me about a time when you had to lead a team through a difficult change?",
			"Give me an example of a conflict you had with a colleague and how you resolved it?",
			"Tell me about a time when you failed at something important. What did you learn?",
			"Describe a situation where you had to make a decision without all the information you wanted?",
			"Give me an example of a time you had to learn a new skill quickly?",
			"Tell me about a time you disagreed with your manager. What happened?",
			"Describe a project where you had to coordinate across multiple teams?",
			"Tell me about a time you had to deliver bad news to a stakeholder?",
			"Give me an example of how you handled an underperforming team member?",
			"Tell me about the achievement you are most proud of and how you accomplished it?",
			"Describe a time when priorities shifted suddenly. How did you adapt?",
			"Give me an example of a risk you took that paid off?",
		},
	},
}

// ProfileFor returns the persona's policy record. Unknown personas fall back
// to the HR profile so that enum drift between layers degrades gracefully
// instead of failing a live interview.
func ProfileFor(p entity.Persona) Profile {
	if prof, ok := profiles[p]; ok {
		return prof
	}
	return profiles[entity.PersonaHR]
}
