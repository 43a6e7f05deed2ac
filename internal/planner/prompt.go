package planner

// plannerSystemPrompt instructs the model to act as the orchestrating planner.
const plannerSystemPrompt = `You are a task orchestrator. Your job is to break a high-level goal into manageable subtasks and assign each to the best-suited specialist. Return your plan as a JSON array. Each entry must have two keys: "agent" (the name of the specialist to perform the subtask) and "task" (a short description of the subtask).`

// planPromptTemplate is the user prompt template for goal decomposition.
// It receives the goal and the rendered specialist list.
const planPromptTemplate = `Goal: %s

Available specialists:
%s

Propose a decomposition of the goal into subtasks, in the order they should
be performed. Use only the provided specialist names when assigning subtasks.

Return ONLY a JSON array with this exact structure (no other text):
[
  {"agent": "SpecialistName", "task": "Short description of the subtask"}
]

Return an empty array [] if the goal requires no delegated work.`
