package llm

import "fmt"

// SemanticScorePrompt asks for a bare 0-100 fit score.
func SemanticScorePrompt(resume, jd string) string {
	return fmt.Sprintf(
		"Resume:\n%s\n\nJob Description:\n%s\n\n"+
			"Score from 0 to 100 how well this resume fits the job description, "+
			"considering skills, responsibilities, and experience. Only output the number.",
		resume, jd)
}

// TailorPrompt asks for a rewritten resume emphasizing the target role without
// inventing new employers, dates, or credentials.
func TailorPrompt(resume, jd, role, company string) string {
	return fmt.Sprintf(
		"You are an expert resume writer. Rewrite the resume below so it is tailored "+
			"to the %s role at %s. Reorder and re-emphasize the candidate's existing "+
			"content to match the job description. Do not invent new employers, job "+
			"titles, dates, or credentials. Return only the rewritten resume as plain "+
			"text with no commentary.\n\nResume:\n%s\n\nJob Description:\n%s",
		role, company, resume, jd)
}

// JobExplainPrompt asks for a one-line "<X>% Match – explanation" string.
func JobExplainPrompt(resume, jd string) string {
	return fmt.Sprintf(
		"You are a senior recruiter. Evaluate this resume against the job description "+
			"and return exactly:\n\n\"<X>%% Match - <brief explanation>\"\n\n"+
			"Resume:\n%s\n\nJob Description:\n%s\n\nReturn only the single line match string.",
		resume, jd)
}

// JobFallbackPrompt asks the model to produce a JSON array of plausible remote
// openings for a keyword, used when every real provider comes back empty.
func JobFallbackPrompt(keyword string) string {
	return fmt.Sprintf(
		"Act as a job recommender assistant. Return a JSON array of 5 remote job "+
			"openings matching this keyword: %q. For each job return fields: id, title, "+
			"company, location, jd_text (short JD), url (apply link), type "+
			"(Full-time, Part-time, etc.) and posted_at. Return only the JSON array.",
		keyword)
}

// AnswerFeedbackPrompt asks for interview-answer feedback grounded in the JD.
func AnswerFeedbackPrompt(answer, jd string) string {
	return fmt.Sprintf(
		"You are an interview coach. Given the job description below, evaluate the "+
			"candidate's answer. Call out strengths, gaps, and one concrete improvement "+
			"in at most four sentences.\n\nJob Description:\n%s\n\nCandidate Answer:\n%s",
		jd, answer)
}
