package service

import "strings"

// Greeting is the assistant's opening message.
const Greeting = "Hi there! I'm your job search assistant. Ask me anything about resumes, interviews, career advice, or job searching!"

type keywordReply struct {
	keyword string
	reply   string
}

// keywordReplies is matched in order, first hit wins. Keep "career"
// before "career change": a query mentioning both gets the shorter
// match, same as the scripted assistant always behaved.
var keywordReplies = []keywordReply{
	{"resume", "To create an effective resume, focus on highlighting your relevant skills and achievements. Use bullet points, keep it concise (1-2 pages), and tailor it to each job application. Include your contact information, work experience, education, skills, and relevant certifications."},
	{"interview", "Prepare for job interviews by researching the company, practicing common questions, preparing examples of your achievements, and having questions ready to ask the interviewer. Dress professionally, arrive early, and follow up with a thank-you note."},
	{"salary", "When negotiating salary, research industry standards for your role and location. Consider your experience level and the company size. Wait for the employer to bring up compensation first, then aim slightly higher than your target to leave room for negotiation."},
	{"career", "For career advancement, continuously develop your skills, seek mentorship, network within your industry, take on challenging projects, and regularly update your resume and online profiles. Set clear goals and create a plan to achieve them."},
	{"skills", "In-demand job skills currently include programming (Python, JavaScript), data analysis, digital marketing, project management, UX/UI design, cloud computing, artificial intelligence, and soft skills like communication, adaptability, and problem-solving."},
	{"remote", "To find remote jobs, use specialized job boards like Remote.co, We Work Remotely, and FlexJobs. Update your LinkedIn profile to indicate you're open to remote work, and highlight any previous remote work experience in your applications."},
	{"linkedin", "Optimize your LinkedIn profile by using a professional photo, writing a compelling headline and summary, detailing your work experience, requesting recommendations, and regularly sharing industry-relevant content. Complete all sections and use keywords relevant to your target roles."},
	{"cover letter", "A strong cover letter should be personalized for each application, address the hiring manager by name if possible, highlight relevant achievements, explain why you're interested in the role and company, and include a clear call to action."},
	{"network", "Build your professional network by attending industry events, joining professional associations, participating in online communities, connecting with alumni, and reaching out for informational interviews. Be genuine and focus on building relationships, not just asking for favors."},
	{"career change", "When changing careers, identify transferable skills, gain relevant qualifications if needed, update your resume to highlight applicable experience, network in your target industry, and consider starting with volunteer work or internships to build experience."},
}

type chatService struct{}

// NewChatService builds the scripted career assistant.
func NewChatService() ChatService {
	return chatService{}
}

func (chatService) Reply(message string) string {
	query := strings.ToLower(message)

	for _, kr := range keywordReplies {
		if strings.Contains(query, kr.keyword) {
			return kr.reply
		}
	}

	switch {
	case strings.Contains(query, "job"), strings.Contains(query, "work"), strings.Contains(query, "employ"):
		return "When looking for jobs, make sure your resume is updated, set up job alerts on major job boards, leverage your network, and prepare thoroughly for interviews. Tailor your applications to each position you apply for."
	case strings.Contains(query, "thank"):
		return "You're welcome! Feel free to ask if you have any other questions about job searching or career development."
	case strings.Contains(query, "hello"), strings.Contains(query, "hi"), strings.Contains(query, "hey"):
		return "Hello! How can I help with your job search or career questions today?"
	}

	return "I'm not sure I understand your question. Could you try rephrasing it? I can help with resume tips, interview preparation, job search strategies, and career advice."
}
