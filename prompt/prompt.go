// Package prompt builds the coaching prompts sent to the language model and
// the plain-text renderings of report data they embed.
package prompt

import "fmt"

// AnalysisType selects which prompt a single-activity analysis uses.
// Technical skips the language model entirely.
type AnalysisType string

const (
	TypeComprehensive AnalysisType = "comprehensive"
	TypeSummary       AnalysisType = "summary"
	TypeTechnical     AnalysisType = "technical"
)

// ParseAnalysisType validates a user-supplied analysis type string.
func ParseAnalysisType(s string) (AnalysisType, error) {
	switch AnalysisType(s) {
	case TypeComprehensive, TypeSummary, TypeTechnical:
		return AnalysisType(s), nil
	default:
		return "", fmt.Errorf("unknown analysis type %q (want comprehensive, summary or technical)", s)
	}
}

const comprehensiveTemplate = `You are an expert fitness coach and sports scientist analyzing a workout from FIT file data.
Provide a comprehensive, insightful analysis that would be valuable to an athlete.

ACTIVITY DATA:
%s

DETAILED ANALYSIS:
%s

Please provide a comprehensive analysis covering:

1. **Activity Overview**: Summarize the key details of this workout
2. **Performance Analysis**: Analyze the athlete's performance including strengths and areas for improvement
3. **Training Zones**: Explain time spent in different training zones and what this means
4. **Pacing Strategy**: Evaluate the pacing strategy used during the activity
5. **Physiological Insights**: Interpret heart rate, power (if available), and other physiological data
6. **Training Recommendations**: Suggest specific improvements or training focuses based on this data
7. **Recovery Considerations**: Advise on recovery needs based on the intensity and duration

Make your analysis specific, actionable, and tailored to the data provided. Use sports science principles
and avoid generic advice. If certain data is missing, acknowledge it and work with what's available.

Format your response as a well-structured analysis with clear sections and bullet points where appropriate.
`

const summaryTemplate = `Provide a concise but informative summary of this fitness activity:

ACTIVITY DATA:
%s

Create a brief summary (2-3 paragraphs) that captures:
- What type of activity this was and its key metrics
- The most notable aspects of the performance
- One key insight or recommendation

Keep it conversational and engaging, as if you're a coach talking to an athlete.
`

const comparativeTemplate = `Compare and analyze these fitness activities to identify trends and patterns:

ACTIVITIES DATA:
%s

Provide an analysis that includes:
1. **Performance Trends**: How has performance changed across these activities?
2. **Training Patterns**: What patterns do you see in training intensity, duration, or focus?
3. **Areas of Improvement**: What specific areas should the athlete focus on?
4. **Training Recommendations**: Based on these patterns, what training adjustments would you recommend?

Focus on actionable insights that can help improve future performance.
`

const recommendationsTemplate = `Based on this fitness activity analysis, provide specific, actionable training recommendations:

ANALYSIS DATA:
%s

Provide recommendations in these categories:
1. **Immediate Recovery**: What should the athlete do in the next 24-48 hours?
2. **Next Workout**: What type of workout should follow this one?
3. **Weekly Training Focus**: What should be the focus for the upcoming week?
4. **Technique Improvements**: Any specific technique or pacing improvements?
5. **Long-term Development**: What areas need development over the next month?

Make recommendations specific to the data shown and avoid generic advice.
`

// Comprehensive builds the full coaching prompt from the rendered activity
// summary and detailed analysis sections.
func Comprehensive(activitySummary, detailedAnalysis string) string {
	return fmt.Sprintf(comprehensiveTemplate, activitySummary, detailedAnalysis)
}

// Summary builds the short-form prompt from the rendered activity summary.
func Summary(activitySummary string) string {
	return fmt.Sprintf(summaryTemplate, activitySummary)
}

// Comparative builds the multi-activity trends prompt from the rendered
// per-activity sections.
func Comparative(activitiesData string) string {
	return fmt.Sprintf(comparativeTemplate, activitiesData)
}

// Recommendations builds the follow-up training prompt from a rendered
// analysis section.
func Recommendations(analysisData string) string {
	return fmt.Sprintf(recommendationsTemplate, analysisData)
}
