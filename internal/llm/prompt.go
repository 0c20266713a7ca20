package llm

import (
	"fmt"
	"strings"
)

const benefitNamesPrompt = `You are acting as a US health plan configuration QA tester.

Extract each and every covered and non-covered medical benefit from the health plan benefit summary,
evidence of coverage or summary of coverage text below.

Rules:
- If services are grouped, name each benefit with its group. For example "Inpatient Services" under
  "Mental Health & Substance Use Disorder" becomes "Inpatient Services for Mental Health & Substance Use Disorder".
- If the same service appears under several sections, keep the section in the name, for example
  "Radiology services under Preventive services".
- If one entry combines several services, split them into separate benefits.
- Do not extract dental or vision benefits.
- Only return benefits that are not in the previously identified list.
- List benefits in alphabetical order.

Respond only with valid JSON in this format and nothing else. Do not wrap it in a code block:
{"benefits": [{"name": ""}]}
If no new benefits are found respond with {"benefits": []}.

%s

Text segment:
--------------------------
%s
--------------------------`

const benefitDetailPrompt = `You are acting as a US health plan configuration QA tester.

From the health plan text below extract the conditions of the benefit "%s":
- innetwork: cost sharing and conditions when the service is received in network
- outofnetwork: cost sharing and conditions when the service is received out of network
- limitations: visit limits, prior authorization, exclusions and other limitations

Use an empty string when the text says nothing about a field. Respond only with valid JSON in this format
and nothing else. Do not wrap it in a code block:
{"benefit": "", "innetwork": "", "outofnetwork": "", "limitations": ""}

Text:
--------------------------
%s
--------------------------`

const testCasesPrompt = `You are acting as a US health plan configuration QA tester.

Write claim test cases that verify the benefit below is configured correctly. Cover in-network and
out-of-network claims and every limitation. For each test case give realistic ICD-10 diagnosis codes,
CPT/HCPCS procedure codes and place of service codes.

Respond only with valid JSON in this format and nothing else. Do not wrap it in a code block:
{"testCases": [{"name": "", "description": "", "type": "", "expectedResult": "", "icdCodes": [], "procedureCodes": [], "placeOfService": []}]}

Benefit:
%s`

func buildBenefitNamesPrompt(text string, known []string) string {
	previously := "No previously identified benefits."
	if len(known) > 0 {
		previously = "Previously identified benefits: " + strings.Join(known, ", ")
	}

	return fmt.Sprintf(benefitNamesPrompt, previously, text)
}

func buildBenefitDetailPrompt(name, text string) string {
	return fmt.Sprintf(benefitDetailPrompt, name, text)
}

func buildTestCasesPrompt(benefitKey string) string {
	return fmt.Sprintf(testCasesPrompt, benefitKey)
}
