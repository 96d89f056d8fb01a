package solver

import "github.com/anthropics/tutor-engine/internal/domain"

func (e *Engine) computerScienceRules() []rule {
	return []rule{
		{anyOf("python", "java", "javascript", "c++", "coding", "program", "code"), e.solveProgramming},
		{anyOf("algorithm", "sort", "search"), e.solveAlgorithms},
		{anyOf("database", "sql", "query"), e.solveDatabases},
		{anyOf("network", "internet", "protocol"), e.solveNetworks},
		{anyOf("machine learning", "ai", "artificial intelligence", "deep learning"), e.solveMachineLearning},
	}
}

func (e *Engine) solveProgramming(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the programming concept or problem",
			"Step 2: Break down the problem into steps",
			"Step 3: Write pseudocode or algorithm",
			"Step 4: Implement in chosen language",
		},
		Explanation: []string{
			"Programming involves writing instructions that computers execute.",
			"Key concepts: variables, data types, control structures, functions.",
		},
		FinalAnswer:     "Programming translates logic into executable code",
		Method:          "Programming Problem Solving",
		WhyThisWorks:    "Computers follow instructions exactly as given.",
		HowItIsPossible: "Through syntax (grammar) and semantics (meaning) of programming languages.",
		Reasons: []string{
			"Essential for software development",
			"Automates tasks",
			"Powers modern technology",
		},
		Resources: e.resources[domain.SubjectComputerScience],
	}
}

func (e *Engine) solveAlgorithms(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Understand the problem requirements",
			"Step 2: Choose appropriate algorithm",
			"Step 3: Analyze time and space complexity",
			"Step 4: Implement and test",
		},
		Explanation: []string{
			"Algorithms are step-by-step procedures for solving problems.",
			"Important: Time complexity (Big O) and space complexity.",
		},
		FinalAnswer:     "Algorithm efficiency determines program performance",
		Method:          "Algorithm Analysis",
		WhyThisWorks:    "Different algorithms have different efficiencies for the same task.",
		HowItIsPossible: "Through mathematical analysis of operations and memory usage.",
		Reasons: []string{
			"Optimizes performance",
			"Fundamental to computer science",
			"Used in all software",
		},
		Resources: e.resources[domain.SubjectComputerScience],
	}
}

func (e *Engine) solveDatabases(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify data requirements",
			"Step 2: Design database schema (tables, relationships)",
			"Step 3: Write SQL queries for CRUD operations",
			"Step 4: Consider indexing for performance",
		},
		Explanation: []string{
			"Databases store and organize data for efficient retrieval.",
			"SQL (Structured Query Language) is used to manage relational databases.",
		},
		FinalAnswer:     "Databases enable efficient data management",
		Method:          "Database Design",
		WhyThisWorks:    "Data is organized in tables with relationships between them.",
		HowItIsPossible: "Through normalization, indexing, and query optimization.",
		Reasons: []string{
			"Essential for data-driven apps",
			"Enables data integrity",
			"Used in all enterprises",
		},
		Resources: e.resources[domain.SubjectComputerScience],
	}
}

func (e *Engine) solveNetworks(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify network components and protocols",
			"Step 2: Understand OSI or TCP/IP model layers",
			"Step 3: Consider data transmission methods",
		},
		Explanation: []string{
			"Computer networks enable communication between devices.",
			"Protocols define rules for data transmission (TCP/IP, HTTP, etc.).",
		},
		FinalAnswer:     "Networks connect devices for communication and data exchange",
		Method:          "Network Analysis",
		WhyThisWorks:    "Devices communicate through standardized protocols and physical connections.",
		HowItIsPossible: "Through layers of abstraction in network models.",
		Reasons: []string{
			"Foundation of the internet",
			"Enables global communication",
			"Essential for modern apps",
		},
		Resources: e.resources[domain.SubjectComputerScience],
	}
}

func (e *Engine) solveMachineLearning(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the AI/ML problem type (classification, regression, etc.)",
			"Step 2: Prepare and preprocess data",
			"Step 3: Choose and train model",
			"Step 4: Evaluate and optimize",
		},
		Explanation: []string{
			"AI enables computers to learn from data and make decisions.",
			"Machine learning is a subset of AI that learns patterns from data.",
		},
		FinalAnswer:     "AI/ML enables intelligent automation and predictions",
		Method:          "AI/ML Problem Solving",
		WhyThisWorks:    "Algorithms learn patterns from data to make predictions or decisions.",
		HowItIsPossible: "Through statistical models, neural networks, and optimization.",
		Reasons: []string{
			"Powers modern applications",
			"Automates complex tasks",
			"Driving technological innovation",
		},
		Resources: e.resources[domain.SubjectComputerScience],
	}
}
