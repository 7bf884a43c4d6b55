package chatbot

// Canned paragraphs, grouped by topic. Pool order matters: the project
// sub-dispatch and the role topics address variants by index.

var (
	greetingPool = []string{
		"Hello! Welcome to Lakhan Singh's portfolio. I'm here to help you learn more about his professional background, experience, skills, projects, and achievements. What would you like to know?",
		"Hi there! I can provide detailed information about Lakhan Singh's career as a Product Manager, his extensive experience in AI-powered products, and his impressive track record. How can I assist you today?",
		"Hey! Great to meet you! I'm your guide to learning about Lakhan's journey from Software Engineer to Product Manager, his expertise in Conversational AI, and his successful product deliveries. What interests you most?",
	}

	aboutPool = []string{
		"Lakhan Singh is a highly accomplished Product Manager with 4+ years of experience driving AI-powered and SaaS-based product innovation across HR, Ecommerce, and Conversational AI platforms. He has proven success leading cross-functional teams to design, prioritize, and deliver intelligent chatbots, virtual assistants, and digital customer journeys. His journey from software engineer to product manager has equipped him with deep technical understanding, enabling him to lead cross-functional teams effectively. He specializes in AI, fintech, and design systems, with expertise in data-driven decision-making, growth strategies, and product-market fit validation. His passion lies in building intuitive, high-impact products that solve real user problems while achieving business objectives. With a track record of delivering measurable results—including automating 45% of query load through AI chatbots, improving customer satisfaction by 20%, and achieving >95% on-time sprint completion—he brings a results-oriented approach to product management.",
		"Lakhan is a Product Manager with a strong background in Software Engineering, focused on delivering scalable, user-centric digital products that drive business impact. He has 4+ years of experience in product management, specializing in AI-powered solutions, fintech platforms, and conversational AI technologies. His expertise spans across managing product backlogs, defining roadmaps, and aligning stakeholders in Agile/Scrum environments to enhance customer satisfaction, operational efficiency, and business value. He is adept at working with cross-functional teams including design, analytics, and development teams to optimize product experiences. His technical background gives him a unique advantage in understanding complex systems and communicating effectively with engineering teams.",
	}

	skillsPool = []string{
		"Lakhan possesses a comprehensive skill set in Product Management and AI technologies. His core competencies include: Product Ownership (backlog prioritization, sprint planning, requirement grooming, product roadmaps), Conversational AI (Chatbots, Virtual Assistants, NLP, Dialogflow, Rasa, Conversational Banking Journeys), Customer Experience (Journey Design, Voice of Customer, CX Analytics, Personalization), Agile Delivery (Cross-Functional Collaboration, Scrum Team Coordination, UAT, Continuous Improvement), Analytics & Insights (Google Analytics GA4, Mixpanel, Power BI, A/B Testing, Adoption Metrics), and Leadership & Communication (Stakeholder Management, Risk Assessment, Compliance, Client Demos). His software engineering background also gives him proficiency in full-stack development, which helps him bridge the gap between technical teams and business stakeholders.",
		"Lakhan's technical and product skills are extensive. In Product Strategy, he excels at vision development, roadmap planning, and market fit validation. His User Research capabilities include gathering insights and designing user-centric solutions. In Data Analytics, he's proficient with GA4, Mixpanel, Power BI, and A/B testing to drive data-driven decisions. His Agile/Scrum expertise includes sprint planning, cross-functional collaboration, and UAT processes. He's also skilled in Conversational AI technologies like NLP, Dialogflow, and Rasa for building intelligent chatbots. Additionally, his leadership skills enable him to manage stakeholders, assess risks, ensure compliance, and deliver client demos effectively.",
	}

	experiencePool = []string{
		"Lakhan's professional experience is impressive and diverse. Currently, he serves as Product Manager/Owner – AI & Digital Solutions at FlyTech Solution in Noida, India (Feb 2022 – Present). In this role, he owns product backlog and delivery roadmap for multiple AI-driven platforms across HRMS and E-commerce domains. He defined and delivered an AI-powered Employee Self-Service Chatbot integrating HR workflows, which automated 45% of query load and improved response time by 50%. He led the design of an AI-based Personal Shopping Assistant using recommendation algorithms and NLP-driven intent classification, improving engagement by 15%. He partners with design, analytics, and development teams to optimize conversational flows and enhance customer journey efficiency. He collaborates with business and technology stakeholders to assess operational risks and ensure adherence to organizational compliance standards. He drives iterative delivery of chatbot and analytics modules using Agile and Scrum frameworks, achieving >95% on-time sprint completion rate. He increased customer satisfaction scores by 20% through optimized conversational experiences and improved operational efficiency and self-service adoption across enterprise platforms. He leads multi-disciplinary teams across AI, analytics, and design, ensuring product-market fit.",
		"Prior to his current role, Lakhan served as Business Head at RTL Technologies in Noida, India (Jan 2017 – Jan 2022). In this position, he oversaw client delivery and recruitment operations for US-based client projects. He gathered business requirements and optimized internal ATS workflows to enhance recruiter efficiency. He managed a 50+ member cross-functional team, ensuring alignment with client goals and SLAs. He collaborated with engineering teams to improve recruitment analytics and reporting dashboards. He boosted recruiter productivity by 20% and compliance tracking by 35%. He drove 40% client growth and strengthened long-term US partnerships. Before that, he was Project Head – Electronics Product Development at Three X Electronics in New Delhi, India (Jul 2014 – Dec 2016), where he headed development of starter relays, CDI units, ignition coils, switches, and assemblies, expanding product portfolio by 20%. He enforced quality protocols, achieving 95%+ first pass yield and reducing rework costs. He negotiated supplier contracts, lowering material costs by 10–15% and improving lead times by 25%. He drove product launches with sales teams, boosting new product sales by 30% YoY.",
	}

	projectPool = []string{
		"Lakhan has led several high-impact projects. The Hospital-Focused HRMS Platform is a comprehensive HRMS solution tailored for healthcare institutions, addressing unique challenges of hospital workforce management. Key features include Vendor Management System with client job posting, vendor notifications, multi-round interview scheduling, selection/rejection workflows, background check (BGC) with color-coded clearance, and onboarding with knowledge transfer and asset management. The Payroll Management System features healthcare-specific pay structures, shift differentials, overtime calculations, integration with hospital billing systems, and salary slip generation. Advanced Attendance Tracking includes biometric integration, real-time monitoring, compliance with healthcare regulations, and automated login/logout time tracking. Intelligent Leave Management supports multiple leave types (Paid, Casual, Sick, Sabbatical, Maternity, Education) with automatic coverage scheduling. Smart Staff Scheduling provides 24/7 shift planning, skills-based assignment algorithms, emergency staffing protocols, and smart push notifications. The platform streamlined operations for 5+ healthcare facilities, reduced scheduling conflicts by 60%+, and improved compliance tracking efficiency by 50%.",
		"The AI-Powered Employee Self-Service Chatbot is an intelligent HR assistant that automates routine HR queries and processes, enabling 24/7 employee self-service capabilities. Core AI capabilities include Smart Leave Request Processing with natural language understanding, automated approval workflows, and calendar integration. Intelligent Payslip Queries provide instant payslip generation, salary breakdown explanations, and tax calculation clarifications. Interactive Onboarding Support offers guided new employee orientation, document collection automation, and policy explanation. Dynamic HR Policy Guidance provides context-aware policy recommendations and real-time updates. The chatbot uses Natural Language Processing (NLP) for query understanding, Machine Learning models for intent recognition, and integrates with HR databases and systems. It achieved 40%+ reduction in HR department workload, 24/7 availability for employee queries, 85%+ query resolution without human intervention, and reduced response time from hours to seconds.",
		"The AI-Powered Personal Shopping Assistant is a luxury e-commerce conversational commerce solution that guides customers with product discovery, gifting ideas, and styling recommendations. It features Conversational Commerce with natural language product discovery, personalized gifting recommendations, styling and fashion advice, and seasonal collection highlights. Smart Integrations include product catalogue system integration, CRM system connectivity, browsing history analysis, and purchase behavior tracking. The Personalization Engine learns customer preferences, provides dynamic product suggestions, and offers seasonal and trend-based recommendations. The solution boosted customer engagement and premium basket conversions by ~15%, strengthened brand positioning through high-touch digital experiences, enhanced luxury shopping experience with personalized interactions, and improved product discovery for seasonal collections.",
	}

	educationPool = []string{
		"Lakhan holds a Bachelor of Engineering (B.E.) in Electronics & Communication from Dr. A.P.J. Abdul Kalam Technical University, which he completed in 2014. This strong technical foundation in electronics and communication engineering has been instrumental in his career progression, providing him with deep understanding of technical systems and enabling his transition from software engineering to product management. His engineering background gives him a unique perspective when working with technical teams and understanding complex product architectures.",
	}

	certificationPool = []string{
		"Lakhan has an extensive portfolio of professional certifications, particularly focused on AI, Product Management, and Business Analysis. In October 2025, he completed Generative AI Overview for Project Managers from Project Management Institute (PMI). In September 2025, he earned Advanced Business Analysis (35 IIBA PDUs) from Udemy, completed Electronic Arts Product Management Job Simulation and J.P. Morgan Quantitative Research Job Simulation through Forage, finished Fintech Product Management Bootcamp 2025 from Udemy, and achieved Super Certified status from Pendo.io. In August 2025, he completed multiple certifications including: AI Agents for Product Leaders from LinkedIn Learning, AI for Product Management from Pendo.io, Become a 10x Product Manager with ChatGPT & Generative AI from Udemy, Generative AI for Product Managers from LinkedIn Learning, Microsoft Copilot: The Art of Prompt Writing from LinkedIn Learning, Product Discovery Certification from Pendo.io, Product Management Basics Certification from Pendo.io, Prompt Engineering: How to Talk to the AIs from LinkedIn Learning, Radical Product Thinking: Vision Setting from Pendo.io, and Technical Product Management from LinkedIn Learning. These certifications demonstrate his commitment to continuous learning and expertise in AI-powered product management, generative AI tools, prompt engineering, product discovery, and technical product management.",
		"Lakhan's certification portfolio showcases his deep expertise in AI and Product Management. He holds certifications from prestigious organizations including PMI, Pendo.io, LinkedIn Learning, Udemy, and Forage. His certifications span across Generative AI, Product Management fundamentals and advanced topics, Business Analysis, Prompt Engineering, Product Discovery, Technical Product Management, and Fintech. Notably, he has completed job simulations from Electronic Arts and J.P. Morgan, demonstrating practical application of skills. His Super Certified status from Pendo.io indicates mastery across multiple product management domains. These certifications collectively represent a comprehensive skill set in modern product management, AI integration, and business analysis, positioning him as a highly qualified Product Manager with cutting-edge knowledge in AI-powered product development.",
	}

	achievementPool = []string{
		"Lakhan's Be10x AI Tools Mastery Program achievement has been transformative for his professional capabilities. The program has significantly enhanced his skills in AI-powered product management through comprehensive learning modules and hands-on practice with cutting-edge AI tools. He gained deep insights into how artificial intelligence can be leveraged to drive product innovation, improve customer experiences, and optimize business processes. The structured curriculum, combined with expert guidance on AI tools and their practical applications, enabled him to master complex skills that he now applies effectively in his role as a Product Manager. This program has particularly strengthened his ability to integrate AI solutions like chatbots, NLP technologies, and recommendation engines into product roadmaps. The impact extends beyond technical knowledge—it has instilled in him a strategic mindset that helps him approach product challenges with innovative AI-driven solutions, ultimately enhancing his ability to deliver scalable, intelligent products that drive business value.",
		"Throughout his career, Lakhan has achieved remarkable results. At FlyTech Solution, he automated 45% of query load through AI chatbots and improved response time by 50%. He increased customer satisfaction scores by 20% through optimized conversational experiences. He achieved >95% on-time sprint completion rate using Agile and Scrum frameworks. At RTL Technologies, he boosted recruiter productivity by 20% and compliance tracking by 35%, while driving 40% client growth. At Three X Electronics, he expanded product portfolio by 20%, achieved 95%+ first pass yield, reduced material costs by 10–15%, and boosted new product sales by 30% YoY. These achievements demonstrate his consistent track record of delivering measurable business impact.",
	}

	contactPool = []string{
		"You can reach Lakhan through multiple channels. Email: lakhan.rajputaipm@gmail.com. Phone: +91 9690902424. Location: Noida, India. For professional networking, connect with him on LinkedIn at linkedin.com/in/lakhan-rajput-0119/. You can also view his detailed portfolio at beautiful-blossom-08b.notion.site/Lakhan-Singh-Product-Manager-Portfolio. He's always open to discussing new opportunities, collaborations, or just having a conversation about product management, AI technologies, or innovative solutions. Feel free to reach out!",
	}

	defaultPool = []string{
		"I can provide detailed information about Lakhan's experience, skills, projects, education, certifications, achievements, or contact information. You can ask me about his background as a Product Manager, his work at FlyTech Solution, his AI-powered projects, his technical skills, his career journey, or how to get in touch with him. What specific information would you like to know?",
		"I'm here to help you learn about Lakhan Singh! I can tell you in detail about his 4+ years of Product Management experience, his expertise in AI and Conversational AI, his major projects including the HRMS platform and chatbots, his skills and certifications, his career achievements, or his contact information. What would you like to explore?",
		"Feel free to ask me anything about Lakhan! I can provide comprehensive details about his professional background, his current role as Product Manager at FlyTech Solution, his previous experience at RTL Technologies and Three X Electronics, his projects and their impact, his technical and product management skills, his education and certifications, or how to connect with him. What interests you?",
	}
)

const (
	// ClarifyPrompt answers input too short to classify.
	ClarifyPrompt = "I'm here to help! Could you please ask me a question about Lakhan's portfolio?"

	projectOverview = "Lakhan has led three major high-impact projects:\n\n1. Hospital-Focused HRMS Platform: A comprehensive HRMS solution for healthcare institutions with vendor management, payroll, attendance tracking, leave management, and smart staff scheduling. It streamlined operations for 5+ healthcare facilities, reduced scheduling conflicts by 60%+, and improved compliance tracking efficiency by 50%.\n\n2. AI-Powered Employee Self-Service Chatbot: An intelligent HR assistant that automates routine HR queries, enabling 24/7 employee self-service. It achieved 40%+ reduction in HR workload, 85%+ query resolution without human intervention, and reduced response time from hours to seconds.\n\n3. AI-Powered Personal Shopping Assistant: A luxury e-commerce conversational commerce solution that guides customers with product discovery and styling recommendations. It boosted customer engagement and premium basket conversions by ~15% and enhanced luxury shopping experience.\n\nWould you like detailed information about any specific project?"

	interestsReply = "Lakhan has several personal interests that reflect his well-rounded personality. He loves playing corporate leather ball cricket, which combines his passion for sports with professional networking and team building. He also enjoys travelling, exploring new places, cultures, and experiences, which broadens his perspective and inspires creativity. Additionally, he has a passion for car driving, enjoying the freedom and adventure that comes with road trips and exploring scenic routes. These interests help him maintain a healthy work-life balance and bring fresh perspectives to his professional work."

	metricsReply = "Lakhan has achieved impressive metrics throughout his career. At FlyTech Solution, he automated 45% of query load through AI chatbots and improved response time by 50%. He increased customer satisfaction scores by 20% through optimized conversational experiences. He achieved >95% on-time sprint completion rate using Agile and Scrum frameworks. The HRMS platform he developed reduced scheduling conflicts by 60%+ and improved compliance tracking efficiency by 50%. The AI chatbot achieved 85%+ query resolution without human intervention and reduced HR workload by 40%+. At RTL Technologies, he boosted recruiter productivity by 20% and compliance tracking by 35%, while driving 40% client growth. At Three X Electronics, he expanded product portfolio by 20%, achieved 95%+ first pass yield, reduced material costs by 10–15%, and boosted new product sales by 30% YoY."

	aiReply = "Lakhan has extensive expertise in AI and Conversational AI technologies. He specializes in building AI-powered products including chatbots, virtual assistants, and recommendation engines. He's skilled in NLP (Natural Language Processing), Dialogflow, Rasa, and has completed multiple certifications in Generative AI, Prompt Engineering, and AI for Product Management. He has hands-on experience delivering AI solutions that automated 45% of query load, improved response times by 50%, and achieved 85%+ query resolution without human intervention. His AI expertise spans across product strategy, technical implementation, and business impact measurement."
)
