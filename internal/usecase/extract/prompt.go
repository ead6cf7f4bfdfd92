package extract

import "fmt"

// promptTemplate embeds the transcript verbatim together with a literal
// example of the JSON shape the model must return.
const promptTemplate = `Analyze this meeting transcript and extract the following information in a structured JSON format:

1. Meeting title
2. Meeting date (in MM/DD/YYYY format)
3. Participants and their roles
4. A concise summary of the meeting (1-2 paragraphs)
5. Key decisions made (as a list)
6. Action items with assignees and due dates

Meeting Transcript:
%s

Response Format:
{
  "title": "Meeting Title",
  "date": "MM/DD/YYYY",
  "participants": [
    {"name": "Person Name", "role": "Person Role"}
  ],
  "summary": "Concise meeting summary",
  "keyDecisions": [
    "Decision 1",
    "Decision 2"
  ],
  "actionItems": [
    {"person": "Name", "task": "Task description", "dueDate": "Due date"}
  ]
}

Only respond with the JSON object, no additional text or explanations.`

// BuildPrompt returns the extraction instruction for one transcript.
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, transcript)
}
