package pins

// ContactFormID is the pin that opens the contact form.
const ContactFormID = "12"

var catalog = []Pin{
	{
		ID:          "resume-1",
		Type:        Resume,
		Title:       "My Resume",
		Description: "View and download my professional resume including full education, experience, and skills details.",
		Tags:        []string{"PDF", "Curriculum Vitae", "Hire Me"},
	},
	{
		ID:          "1",
		Type:        Project,
		Title:       "CampusGPT",
		Description: "Full-stack AI campus webapp with domain-based login and community-driven query resolution.",
		Tags:        []string{"React", "TypeScript", "OpenAI", "Node.js"},
		GitHubURL:   "https://github.com/sharmila1320/campusgpt",
		LiveURL:     "https://campusgpt.demo.com",
	},
	{
		ID:    "2",
		Type:  Experience,
		Title: "Research Intern @ NIT Silchar",
		Description: "Developed a novel deep-learning architecture combining CNNs and GNNs for underwater image enhancement. " +
			"Achieved high PSNR/SSIM improvements on UIEB and EUVP datasets by modeling both local textures and global structural relationships. " +
			"Implemented using PyTorch and PyTorch Geometric with optimized graph construction and perceptual loss functions. Achieved 16.91 dB PSNR.",
		Tags: []string{"Deep Learning", "Research", "Computer Vision", "PyTorch", "GNN", "CNN", "Image Processing", "Python"},
	},
	{
		ID:          "3",
		Type:        Project,
		Title:       "QuickCV Builder",
		Description: "MERN Stack Resume Builder with LinkedIn import, customizable templates, and one-click PDF export.",
		Tags:        []string{"MERN Stack", "MongoDB", "React"},
		GitHubURL:   "https://github.com/sharmila1320/quickcv",
		DemoURL:     "https://youtube.com/watch?v=demo",
	},
	{
		ID:          "4",
		Type:        Achievement,
		Title:       "Competitive Programming",
		Description: "Solved 500+ coding problems across LeetCode, GFG, and Codeforces. Active GSSoC'25 Contributor.",
		Tags:        []string{"DSA", "LeetCode", "Open Source"},
	},
	{
		ID:          "5",
		Type:        Project,
		Title:       "Spam Mail Detection",
		Description: "Intelligent email-classification system using Naive Bayes, SVM, and Decision Trees. 99.6% Accuracy.",
		Tags:        []string{"Machine Learning", "NLP", "Scikit-learn"},
		GitHubURL:   "https://github.com/sharmila1320/Spam-mail-detection",
	},
	{
		ID:          "6",
		Type:        Skill,
		Title:       "Tech Stack",
		Description: "Proficient in C++, Python, JavaScript, React, Next.js, and Deep Learning frameworks like TensorFlow & Keras.",
		Tags:        []string{"Full Stack", "AI/ML", "Tools", "DL Frameworks"},
	},
	{
		ID:          "7",
		Type:        Experience,
		Title:       "Leadership Roles",
		Description: "English Literature Head at Illuminits (NITS) & Social Media Manager at AAVEG.",
		Tags:        []string{"Leadership", "Communication", "Management"},
	},
	{
		ID:          "8",
		Type:        Achievement,
		Title:       "Hackathons",
		Description: "Participated in Tek-Qubit : qualified phase 2, Flipkart Grid, Walmart Sparkathon, Adobe India, and CodeHer.",
		Tags:        []string{"Innovation", "Teamwork", "Hackathon", "Problem Solving"},
	},
	{
		ID:          "9",
		Type:        Project,
		Title:       "LeetCode Profile",
		Description: "My competitive programming profile on LeetCode with solved problems and coding challenges.",
		Tags:        []string{"LeetCode", "DSA", "Competitive Programming"},
		LiveURL:     "https://leetcode.com/u/SharkOuttie/",
	},
	{
		ID:          "10",
		Type:        Project,
		Title:       "CodeForces Profile",
		Description: "My competitive programming profile on CodeForces showcasing algorithmic skills and contest participation.",
		Tags:        []string{"CodeForces", "DSA", "Competitive Programming"},
		LiveURL:     "https://codeforces.com/profile/SharkOuttie13",
	},
	{
		ID:          "11",
		Type:        Achievement,
		Title:       "Contact Details",
		Description: "Get in touch with me directly. | Mobile: +91 8341251461 | Email: sharmilarapeti1451@gmail.com",
		Tags:        []string{"Contact", "Phone", "Email"},
	},
	{
		ID:          ContactFormID,
		Type:        Project,
		Title:       "Contact Me",
		Description: "Send me a message directly through this form. I'll get back to you as soon as possible.",
		Tags:        []string{"Contact", "Form", "Email"},
	},
}
