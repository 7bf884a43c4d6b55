package chatbot

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Topic names a response bucket.
type Topic string

// Topics in priority order. TopicClarify labels the reply to input that is
// too short to classify and never appears in the rule table.
const (
	TopicClarify        Topic = "clarify"
	TopicGreetings      Topic = "greetings"
	TopicAbout          Topic = "about"
	TopicSkills         Topic = "skills"
	TopicExperience     Topic = "experience"
	TopicProjects       Topic = "projects"
	TopicEducation      Topic = "education"
	TopicCertifications Topic = "certifications"
	TopicAchievements   Topic = "achievements"
	TopicContact        Topic = "contact"
	TopicInterests      Topic = "interests"
	TopicMetrics        Topic = "metrics"
	TopicCurrentRole    Topic = "current-role"
	TopicPreviousRole   Topic = "previous-role"
	TopicAITechnology   Topic = "ai-technology"
	TopicDefault        Topic = "default"
)

// shortQuestionRunes bounds the "what/who/tell me" catch-all of the about topic.
const shortQuestionRunes = 30

// Predicate reports whether a normalized query belongs to a topic.
type Predicate func(query string) bool

// Handler produces the reply for a query its rule matched.
type Handler func(query string, rnd Rand) string

// Rule pairs a topic's trigger predicate with the handler that answers it.
type Rule struct {
	Topic Topic
	Match Predicate
	Reply Handler
}

// patterns ORs regular expressions into a single predicate.
func patterns(exprs ...string) Predicate {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return func(query string) bool {
		for _, re := range compiled {
			if re.MatchString(query) {
				return true
			}
		}
		return false
	}
}

func anyOf(preds ...Predicate) Predicate {
	return func(query string) bool {
		for _, p := range preds {
			if p(query) {
				return true
			}
		}
		return false
	}
}

// shorterThan narrows p to queries of fewer than n runes.
func shorterThan(n int, p Predicate) Predicate {
	return func(query string) bool {
		return utf8.RuneCountInString(query) < n && p(query)
	}
}

func always(string) bool { return true }

// pick answers with a uniformly random member of pool.
func pick(topic Topic, pool []string) Handler {
	if len(pool) == 0 {
		panic(fmt.Sprintf("chatbot: topic %q has an empty response pool", topic))
	}
	return func(_ string, rnd Rand) string {
		i := rnd.Intn(len(pool))
		if i < 0 || i >= len(pool) {
			i = 0
		}
		return pool[i]
	}
}

func fixed(text string) Handler {
	return func(string, Rand) string { return text }
}

// variant is one branch of a deterministic sub-dispatch.
type variant struct {
	match Predicate
	text  string
}

// dispatch returns the text of the first matching variant, or fallback when
// none match.
func dispatch(variants []variant, fallback string) Handler {
	return func(query string, _ Rand) string {
		for _, v := range variants {
			if v.match(query) {
				return v.text
			}
		}
		return fallback
	}
}

// projectVariants is checked most specific first.
var projectVariants = []variant{
	{
		match: patterns(`(hrms|hospital|healthcare|workforce management)`),
		text:  projectPool[0],
	},
	{
		match: patterns(`(chatbot|employee|hr chatbot|self-service|ai assistant)`),
		text:  projectPool[1],
	},
	{
		match: patterns(`(shopping|ecommerce|e-commerce|luxury|personal shopping|conversational commerce)`),
		text:  projectPool[2],
	},
}

// defaultRules builds the rule table. Predicates overlap, so the order of
// the returned slice decides which topic answers.
func defaultRules() []Rule {
	return []Rule{
		{
			Topic: TopicGreetings,
			Match: patterns(
				`^(hi|hello|hey|greetings|good morning|good afternoon|good evening|what's up|sup)`,
				`^(hi there|hello there|hey there)`,
			),
			Reply: pick(TopicGreetings, greetingPool),
		},
		{
			Topic: TopicAbout,
			Match: anyOf(
				patterns(
					`(^| )about( |$|lakhan|him)`,
					`(who is|tell me about|introduce|background|overview|summary|describe)`,
					`(what does|what is lakhan|who is lakhan|can you tell me about)`,
				),
				shorterThan(shortQuestionRunes, patterns(`(^what|^who|^tell me)`)),
			),
			Reply: pick(TopicAbout, aboutPool),
		},
		{
			Topic: TopicSkills,
			Match: patterns(
				`(skill|expertise|proficient|what can|capabilities|abilities|competencies|strengths)`,
				`(what skills|technical skills|product skills|what is he good at)`,
				`(knows|specializes|expert in)`,
			),
			Reply: pick(TopicSkills, skillsPool),
		},
		{
			Topic: TopicExperience,
			Match: patterns(
				`(experience|work|job|career|employment|company|role|position|current role|previous role)`,
				`(where does|where did|work history|professional experience|work experience)`,
				`(flytech|rtl technologies|three x|current company|previous company)`,
				`(what does he do|what is his job|what is his role)`,
			),
			Reply: pick(TopicExperience, experiencePool),
		},
		{
			Topic: TopicProjects,
			Match: patterns(
				`(project|portfolio|built|developed|created|hrms|chatbot|shopping assistant|hospital|ecommerce|e-commerce)`,
				`(what projects|which projects|project details|project work|major projects|key projects)`,
				`(ai chatbot|employee chatbot|hrms platform|shopping assistant|personal shopping|hr chatbot)`,
			),
			Reply: dispatch(projectVariants, projectOverview),
		},
		{
			Topic: TopicEducation,
			Match: patterns(
				`(education|degree|university|college|qualification|studied|graduate|bachelor|b\.e\.|engineering)`,
				`(where did he study|what degree|educational background|academic)`,
			),
			Reply: pick(TopicEducation, educationPool),
		},
		{
			Topic: TopicCertifications,
			Match: patterns(
				`(certification|certificate|certified|pmi|pendo|udemy|linkedin|forage|iiba)`,
				`(what certifications|which certifications|certifications list|professional certifications)`,
				`(generative ai|ai for product|product management basics|super certified|prompt engineering)`,
				`(electronic arts|j\.p\. morgan|fintech bootcamp|quantitative research)`,
			),
			Reply: pick(TopicCertifications, certificationPool),
		},
		{
			Topic: TopicAchievements,
			Match: patterns(
				`(achievement|accomplishment|result|success|milestone|impact|results|metrics)`,
				`(what has he achieved|key achievements|major accomplishments|career highlights)`,
				`(45%|20%|60%|95%|automated|improved|increased|reduced)`,
			),
			Reply: pick(TopicAchievements, achievementPool),
		},
		{
			Topic: TopicContact,
			Match: patterns(
				`(contact|email|phone|reach|connect|linkedin|get in touch|how to contact|reach out)`,
				`(email address|phone number|contact details|contact info|where is he|location)`,
				`(noida|india|lakhan\.rajputaipm|9690902424)`,
			),
			Reply: pick(TopicContact, contactPool),
		},
		{
			Topic: TopicInterests,
			Match: patterns(
				`(interest|hobby|hobbies|what does he like|passion|enjoy|travel|cricket|driving)`,
				`(corporate cricket|leather ball|travelling|car driving)`,
			),
			Reply: pick(TopicInterests, []string{interestsReply}),
		},
		{
			Topic: TopicMetrics,
			Match: patterns(`(how much|how many|percentage|metric|kpi|result|impact|outcome)`),
			Reply: pick(TopicMetrics, []string{metricsReply}),
		},
		{
			Topic: TopicCurrentRole,
			Match: patterns(`(current|present|now|currently|what is he doing now)`),
			Reply: pick(TopicCurrentRole, experiencePool[:1]),
		},
		{
			Topic: TopicPreviousRole,
			Match: patterns(`(previous|before|earlier|past|prior|used to work)`),
			Reply: pick(TopicPreviousRole, experiencePool[1:2]),
		},
		{
			Topic: TopicAITechnology,
			Match: patterns(
				`(ai|artificial intelligence|machine learning|nlp|conversational ai|generative ai)`,
				`(chatbot|dialogflow|rasa|prompt engineering|copilot|chatgpt)`,
			),
			Reply: pick(TopicAITechnology, []string{aiReply}),
		},
	}
}

func defaultFallback() Rule {
	return Rule{
		Topic: TopicDefault,
		Match: always,
		Reply: pick(TopicDefault, defaultPool),
	}
}
