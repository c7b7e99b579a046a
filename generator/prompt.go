package generator

import (
	"fmt"
	"strings"

	"auto_park_blog_publisher/airtable"
)

// BuildPrompt assembles the system and user messages for one park. The
// system message carries the style rules and the labeled output contract;
// the user message carries the park's own data.
func BuildPrompt(park airtable.Park, opts Options) Prompt {
	return Prompt{
		System: buildSystemPrompt(),
		User:   buildUserPrompt(park, opts),
	}
}

func buildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are an expert travel writer and national park specialist creating SEO-optimized blog content.\n\n")

	sb.WriteString("CONTENT REQUIREMENTS:\n")
	sb.WriteString("- Write 800-1200 words of completely original content\n")
	sb.WriteString("- Use an engaging, enthusiastic but professional tone\n")
	sb.WriteString("- Include practical advice and specific recommendations\n\n")

	sb.WriteString("SEO REQUIREMENTS:\n")
	sb.WriteString("- Park name must appear in the title and naturally throughout the content\n")
	sb.WriteString("- City and state must appear in the title and in the first and last paragraphs\n")
	sb.WriteString("- Keep the meta description under 160 characters\n")
	sb.WriteString("- Include a 1-2 sentence excerpt for previews\n\n")

	sb.WriteString("TITLE CREATIVITY:\n")
	sb.WriteString("- Vary title patterns between posts; avoid \"Ultimate Guide to...\" and \"Complete Guide to...\"\n\n")

	sb.WriteString("Your response MUST follow this exact format:\n\n")
	sb.WriteString("TITLE: [title with park name, city, and state]\n\n")
	sb.WriteString("DESCRIPTION: [meta description 150-160 characters with park name and location]\n\n")
	sb.WriteString("EXCERPT: [1-2 sentences summarizing the post]\n\n")
	sb.WriteString("CONTENT:\n")
	sb.WriteString("[Full post in markdown, 800-1200 words, with ## headers for at least 4-5 sections,\n")
	sb.WriteString("practical visitor information, and a closing call-to-action]\n\n")
	sb.WriteString("TAGS: [8 relevant tags including park name, state, and activities]\n")
	return sb.String()
}

func buildUserPrompt(park airtable.Park, opts Options) string {
	topic := opts.Topic
	if topic == "" {
		topic = "complete visitor guide"
	}
	season := opts.Season
	if season == "" {
		season = "year-round"
	}

	activities := "hiking, sightseeing, photography"
	if len(park.Activities) > 0 {
		activities = strings.Join(park.Activities, ", ")
	}
	features := "natural beauty, outdoor recreation"
	if len(park.Features) > 0 {
		features = strings.Join(park.Features, ", ")
	}

	primaryKeyword := fmt.Sprintf("Visit %s in %s, %s", park.Name, park.City, park.State)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create an SEO-optimized blog post about %s for the topic: %q.\n\n", park.Name, topic))
	sb.WriteString("PARK INFORMATION:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", park.Name))
	sb.WriteString(fmt.Sprintf("- Location: %s, %s\n", park.City, park.State))
	sb.WriteString(fmt.Sprintf("- Description: %s\n", park.Description))
	sb.WriteString(fmt.Sprintf("- Available Activities: %s\n", activities))
	sb.WriteString(fmt.Sprintf("- Key Features: %s\n", features))
	sb.WriteString(fmt.Sprintf("- Season Focus: %s\n\n", season))

	sb.WriteString(fmt.Sprintf("PRIMARY KEYWORD: %q\n\n", primaryKeyword))

	sb.WriteString("REQUIREMENTS:\n")
	sb.WriteString(fmt.Sprintf("1. Include %q naturally in the content\n", primaryKeyword))
	sb.WriteString(fmt.Sprintf("2. Mention %s and %s in the first and last paragraphs\n", park.City, park.State))
	sb.WriteString("3. Include specific, actionable advice for visitors\n")
	sb.WriteString("4. Use compelling headers and subheaders (at least 5 main sections)\n\n")

	sb.WriteString("SECTIONS TO INCLUDE:\n")
	sb.WriteString("- Introduction with location and overview\n")
	sb.WriteString("- Historical or cultural significance\n")
	sb.WriteString("- Top activities and attractions\n")
	sb.WriteString("- Practical visitor information (hours, fees, best times)\n")
	sb.WriteString("- Tips for different types of visitors\n")
	sb.WriteString("- Conclusion with call-to-action\n\n")

	sb.WriteString("LONG-TAIL KEYWORDS TO WORK IN NATURALLY:\n")
	sb.WriteString(fmt.Sprintf("- \"things to do at %s\"\n", park.Name))
	sb.WriteString(fmt.Sprintf("- \"best time to visit %s\"\n", park.Name))
	sb.WriteString(fmt.Sprintf("- \"%s entrance fees\"\n", park.Name))
	return sb.String()
}
