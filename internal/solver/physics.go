package solver

import (
	"fmt"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
)

const gravity = 9.8

func (e *Engine) physicsRules() []rule {
	return []rule{
		{func(lower string) bool {
			return strings.Contains(lower, "force") && strings.Contains(lower, "mass")
		}, e.solveForce},
		{anyOf("velocity", "speed", "distance", "time"), e.solveMotion},
		{anyOf("work"), e.solveWork},
		{anyOf("energy"), e.solveEnergy},
		{anyOf("wave", "frequency", "wavelength"), e.solveWave},
	}
}

func (e *Engine) solveForce(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.fallback(domain.SubjectPhysics)
	}
	mass, accel := nums[0], nums[1]
	force := mass * accel

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify known values: mass (m) = %s kg, acceleration (a) = %s m/s²",
				formatNum(mass), formatNum(accel)),
			"Step 2: Use Newton's Second Law: F = ma",
			fmt.Sprintf("Step 3: Calculate: F = %s × %s = %s N",
				formatNum(mass), formatNum(accel), formatNum(force)),
		},
		Explanation: []string{
			"Newton's Second Law states that Force equals mass times acceleration (F = ma).",
			"This is one of the fundamental laws of classical mechanics.",
		},
		FinalAnswer:     fmt.Sprintf("Force = %s Newtons", formatNum(force)),
		Method:          "Newton's Second Law (F = ma)",
		WhyThisWorks:    "Force causes acceleration. The more mass an object has, the more force is needed to accelerate it.",
		HowItIsPossible: "This law was derived from experiments by Sir Isaac Newton in the 17th century.",
		Reasons: []string{
			"Foundation of classical mechanics",
			"Used in engineering and design",
			"Explains motion in everyday life",
		},
		Resources: e.resources[domain.SubjectPhysics],
	}
}

func (e *Engine) solveMotion(question string, nums []float64) domain.SolutionRecord {
	lower := strings.ToLower(question)
	if len(nums) < 2 || !containsAny(lower, "distance", "speed") {
		return e.fallback(domain.SubjectPhysics)
	}
	speed, time := nums[0], nums[1]
	distance := speed * time

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify: speed (v) = %s m/s, time (t) = %s s",
				formatNum(speed), formatNum(time)),
			"Step 2: Use formula: distance = speed × time",
			fmt.Sprintf("Step 3: Calculate: d = %s × %s = %s m",
				formatNum(speed), formatNum(time), formatNum(distance)),
		},
		Explanation: []string{
			"Distance = Speed × Time",
			"This is derived from the definition of speed as distance traveled per unit time",
		},
		FinalAnswer:     fmt.Sprintf("Distance = %s meters", formatNum(distance)),
		Method:          "Speed-Distance-Time Formula",
		WhyThisWorks:    "Speed tells us how much distance is covered in each unit of time. Multiplying by total time gives total distance.",
		HowItIsPossible: "This relationship comes from the definition of speed as rate of change of distance.",
		Reasons: []string{
			"Essential in navigation",
			"Used in transportation",
			"Foundation of kinematics",
		},
		Resources: e.resources[domain.SubjectPhysics],
	}
}

func (e *Engine) solveWork(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.fallback(domain.SubjectPhysics)
	}
	force, distance := nums[0], nums[1]
	work := force * distance

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify: Force (F) = %s N, Distance (d) = %s m",
				formatNum(force), formatNum(distance)),
			"Step 2: Use formula: Work = Force × Distance",
			fmt.Sprintf("Step 3: Calculate: W = %s × %s = %s Joules",
				formatNum(force), formatNum(distance), formatNum(work)),
		},
		Explanation: []string{
			"Work is done when a force causes displacement.",
			"Unit of work is Joule (J) = Newton-meter",
		},
		FinalAnswer:     fmt.Sprintf("Work = %s Joules", formatNum(work)),
		Method:          "Work Formula (W = Fd)",
		WhyThisWorks:    "Work transfers energy. When you push an object and it moves, you're doing work on it.",
		HowItIsPossible: "The work done is proportional to both the force applied and the distance moved in the direction of the force.",
		Reasons: []string{
			"Conservation of energy principle",
			"Used in all mechanical systems",
			"Essential for understanding energy transfer",
		},
		Resources: e.resources[domain.SubjectPhysics],
	}
}

func (e *Engine) solveEnergy(question string, nums []float64) domain.SolutionRecord {
	lower := strings.ToLower(question)

	if strings.Contains(lower, "kinetic") && len(nums) >= 1 {
		mass := nums[0]
		velocity := 1.0
		if len(nums) >= 2 {
			velocity = nums[1]
		}
		ke := 0.5 * mass * velocity * velocity

		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Given: mass (m) = %s kg, velocity (v) = %s m/s",
					formatNum(mass), formatNum(velocity)),
				"Step 2: Use Kinetic Energy formula: KE = ½mv²",
				fmt.Sprintf("Step 3: Calculate: KE = ½ × %s × (%s)² = %s J",
					formatNum(mass), formatNum(velocity), formatNum(ke)),
			},
			Explanation: []string{
				"Kinetic energy is the energy of motion.",
				"It depends on mass and the square of velocity.",
			},
			FinalAnswer:     fmt.Sprintf("Kinetic Energy = %s Joules", formatNum(ke)),
			Method:          "Kinetic Energy Formula (KE = ½mv²)",
			WhyThisWorks:    "When you accelerate an object, you transfer energy to it. This energy becomes kinetic energy.",
			HowItIsPossible: "Derived from work-energy theorem: work done equals change in kinetic energy.",
			Reasons: []string{
				"Explains motion and collisions",
				"Used in vehicle safety design",
				"Foundation of thermodynamics",
			},
			Resources: e.resources[domain.SubjectPhysics],
		}
	}

	if strings.Contains(lower, "potential") && len(nums) >= 1 {
		mass := nums[0]
		height := 1.0
		if len(nums) >= 2 {
			height = nums[1]
		}
		pe := mass * gravity * height

		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Given: mass (m) = %s kg, height (h) = %s m",
					formatNum(mass), formatNum(height)),
				"Step 2: Use Gravitational Potential Energy: PE = mgh",
				fmt.Sprintf("Step 3: Calculate: PE = %s × %s × %s = %s J",
					formatNum(mass), formatNum(gravity), formatNum(height), formatNum(pe)),
			},
			Explanation: []string{
				"Gravitational potential energy is energy stored due to position in a gravitational field.",
				"It increases with height and mass.",
			},
			FinalAnswer:     fmt.Sprintf("Potential Energy = %s Joules", formatNum(pe)),
			Method:          "Gravitational PE Formula (PE = mgh)",
			WhyThisWorks:    "Objects higher in a gravitational field have more potential to do work when they fall.",
			HowItIsPossible: "This energy comes from the gravitational force that would accelerate the object downward.",
			Reasons: []string{
				"Important for understanding falling objects",
				"Used in hydroelectric power",
				"Related to conservation of energy",
			},
			Resources: e.resources[domain.SubjectPhysics],
		}
	}

	return e.fallback(domain.SubjectPhysics)
}

func (e *Engine) solveWave(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.fallback(domain.SubjectPhysics)
	}
	freq, wavelength := nums[0], nums[1]
	velocity := freq * wavelength

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Given: frequency (f) = %s Hz, wavelength (λ) = %s m",
				formatNum(freq), formatNum(wavelength)),
			"Step 2: Use wave equation: v = fλ",
			fmt.Sprintf("Step 3: Calculate: v = %s × %s = %s m/s",
				formatNum(freq), formatNum(wavelength), formatNum(velocity)),
		},
		Explanation: []string{
			"The wave equation relates velocity, frequency, and wavelength.",
			"This applies to all types of waves: light, sound, water, etc.",
		},
		FinalAnswer:     fmt.Sprintf("Wave velocity = %s m/s", formatNum(velocity)),
		Method:          "Wave Equation (v = fλ)",
		WhyThisWorks:    "Frequency tells how many waves pass per second, wavelength tells the distance between waves. Their product gives wave speed.",
		HowItIsPossible: "This relationship was discovered through experimental observations of wave behavior.",
		Reasons: []string{
			"Essential for understanding light and sound",
			"Used in communications technology",
			"Important in medical imaging",
		},
		Resources: e.resources[domain.SubjectPhysics],
	}
}
