package chat

const (
	// systemPrompt frames the assistant for pregnancy support without ever
	// replacing professional medical advice.
	systemPrompt = "You are a supportive AI assistant for pregnant women on the SheWell platform. " +
		"Provide accurate, empathetic guidance on pregnancy topics including prenatal care, common symptoms, " +
		"nutrition, and when to consult a doctor. Always encourage regular check-ups and advise seeking " +
		"professional medical advice for specific health concerns. Never provide specific medical diagnoses " +
		"or replace professional medical advice."

	// fallbackMessage is returned whenever the upstream generation fails;
	// the chat endpoint never hard-errors for upstream problems.
	fallbackMessage = "Sorry, I was unable to process your request. Please try again later."

	dietPromptTemplate = `Generate a personalized pregnancy diet plan with the following details:
- Age: %s
- Current weight: %s kg
- Height: %s cm
- Activity level: %s
- Dietary restrictions: %s
- Health goals: %s
- Weeks pregnant: %d (Trimester %d)

Include:
1. Daily calorie needs
2. Macro breakdown (protein, carbs, fats)
3. Key nutrients for this stage of pregnancy
4. Sample meal plan for one day
5. Specific foods to include
6. Foods to avoid
7. Pregnancy-specific nutrition tips`
)
