package chat

// Owner is the portfolio owner the assistant speaks for.
const Owner = "Sharmila"

// Resume is the background the assistant answers from.
const Resume = `Name: Rapeti Sharmila
Role: Electronics & Communication Engineer | Hybrid SDE & AI/ML Enthusiast
Email: sharmilarapeti1451@gmail.com
Links: github.com/sharmila1320, linkedin.com/in/sharmilarapeti
Education:
- B.Tech in Electronics and Communication Engineering at National Institute of Technology, Silchar (2022-2026), CGPA: 7.39.
- HSC at Sasi Educational Institutions (94.3%).
- SSC at Vivekananda High School (100%).
Experience:
- Summer Research Intern at SN BOSE - NIT Silchar (May 2025 - July 2025): Designed MARLINet, a hybrid CNN-GNN model for underwater image enhancement. Improved PSNR to 16.91 dB.
- English Literature Head (Illuminits / NITS).
- Social Media Manager (AAVEG / NITS).
Projects:
- CampusGPT: Full-stack AI campus assistant using React, TS, Node.js, OpenAI API. Handles queries and unifies campus info.
- QuickCV: MERN Stack Resume Builder with LinkedIn import and PDF export.
- Spam Mail Detection: ML email classification system with 99.6% accuracy using Naive Bayes, SVM.
Skills:
- Languages: C++, Python, JavaScript, SQL.
- Web: React.js, Next.js, Node.js, Express.js, Tailwind, HTML/CSS.
- AI/ML: CNNs, RNNs, Transformers, TensorFlow, Keras, Scikit-Learn, OpenCV, NLP.
- Databases: MongoDB, MySQL, PostgreSQL.
- Tools: Git/GitHub, Linux, Docker, Postman.
Achievements:
- Active Open-source contributor at GSSoC'25.
- Solved 500+ coding problems (LeetCode, GFG, Codeforces).
- Hackathons: Flipkart Grid, Walmart Sparkathon, Adobe India, CodeHer.
`
