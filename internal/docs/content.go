package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with beadplan",
		Content: topicQuickstart,
	},
	{
		Name:    "plan",
		Title:   "Plan Format",
		Summary: "Epic and bead fields, local ids, and dependencies",
		Content: topicPlan,
	},
	{
		Name:    "script",
		Title:   "Generated Script",
		Summary: "Phases of the generated script and how ids are captured",
		Content: topicScript,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: ".beadplan.yaml fields and defaults",
		Content: topicConfig,
	},
	{
		Name:    "errors",
		Title:   "Validation Errors",
		Summary: "What beadplan rejects before emitting a script",
		Content: topicErrors,
	},
}

const topicQuickstart = `Quick Start
===========

1. Write an example plan:

    beadplan init

   This creates plan.json in the current directory.

2. Check it:

    beadplan check plan.json

3. Compile it into a script and review the result:

    beadplan plan.json > create_beads.sh
    beadplan -o create_beads.sh plan.json

4. Run the script (or let beadplan do it):

    bash create_beads.sh
    beadplan apply plan.json

CLI
---

  beadplan <plan>                 Compile plan to stdout
  beadplan -                      Read the plan from stdin
  beadplan -o FILE <plan>         Write the script to FILE (mode 0755)
  beadplan --run-id <plan>        Stamp a run id into the script
  beadplan --allow-unresolved     Defer unknown depends_on ids to run time
  beadplan check <plan>           Validate only
  beadplan apply <plan>           Compile and execute with bash
  beadplan init                   Write an example plan.json
  beadplan docs [topic]           Show documentation
`

const topicPlan = `Plan Format
===========

A plan is JSON, YAML, or a Markdown file whose first fenced json/yaml
block holds the plan.

    {
      "epic": {
        "title": "Auth",
        "description": "Login and sessions",
        "priority": 1
      },
      "beads": [
        {
          "id": "auth-spike",
          "title": "Spike: Auth architecture",
          "type": "spike",
          "priority": 1,
          "description": "Decide JWT vs sessions",
          "acceptance": "ADR document created",
          "assignee": "human:@techlead",
          "labels": ["backend", "architecture"]
        },
        {
          "id": "users-migration",
          "title": "Create users table migration",
          "type": "task",
          "depends_on": ["auth-spike"],
          "labels": ["backend", "database"]
        }
      ]
    }

Fields
------

  title        required on the epic and every bead
  id           local reference; derived from the title when absent
  type         spike, task, bug, ... (letters, digits, - and _)
  priority     integer
  description  free text
  acceptance   free text
  assignee     free text
  labels       list of labels, attached in order
  depends_on   list of local ids (or "epic"), linked in order

A field that is absent (or null) produces no flag at all. A present empty
string produces an empty argument.

Local ids
---------

When "id" is absent the title is lower-cased, every whitespace character
becomes "-", and the result is cut to 20 characters:

    "Create users table migration"  ->  create-users-table-m

Two beads may not end up with the same local id. When the plan has an
epic, beads can depend on it with the reserved id "epic".

Dependencies may point forward to beads listed later. Cycles are not
checked; the tracker decides what to do with them.
`

const topicScript = `Generated Script
================

The script runs under bash with "set -euo pipefail" and is laid out in
fixed phases:

  1. Preamble      stop unless the tracker's state directory exists;
                   declare the BEAD_IDS table
  2. Epic          EPIC_ID=$(br create ... --json | jq -r '.id')
  3. Beads         BEAD_IDS['id']=$(br create ... --json | jq -r '.id')
                   in plan order
  4. Dependencies  br dep add "${BEAD_IDS['child']}" "${BEAD_IDS['parent']}"
  5. Labels        br label add "${BEAD_IDS['id']}" label...
  6. Sync          br sync --flush-only; br ready

Every bead is created before any link is made, so a bead may depend on one
listed after it. Phases 2, 3, 4 and 5 are left out when there is nothing to
do.

All free text (titles, descriptions, acceptance criteria, assignees,
labels) is single-quoted, so quotes, $, backticks, backslashes and
newlines reach the tracker unchanged.

The script stops at the first failing command. Items created before that
point remain in the tracker.
`

const topicConfig = `Configuration Reference
=======================

beadplan looks for .beadplan.yaml in the current directory and its
parents, or reads the file given with --config.

  tool: br                 tracker binary
  state-dir: .beads        directory the script requires before running
  jq: jq                   jq binary used to read created ids
  id-length: 20            length of derived local ids
  id-separator: "-"        replaces whitespace in derived ids
  allow-unresolved: false  let unknown depends_on ids through

Every field is optional.
`

const topicErrors = `Validation Errors
=================

beadplan emits nothing when any of these is found:

  'title' is required      epic or bead without a title
  duplicate local id       two beads share an id, explicit or derived,
                           or a bead uses "epic" while the plan has one
  unresolved reference     depends_on names an id no bead has
                           (skipped with --allow-unresolved)
  invalid type             type contains characters other than letters,
                           digits, - and _

Errors name the bead by position (1-indexed) and title.
`
