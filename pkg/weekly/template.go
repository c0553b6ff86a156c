package weekly

// defaultTemplate is used when weekly-links/template.md does not exist.
// Token placeholders are replaced on render; the bracket forms are kept
// working for older hand-edited templates.
const defaultTemplate = `# Open Disruption — Weekly AI News Links
**Date:** {DISPLAY_DATE}
**Episode:** Weekly Office Hours

Welcome to this week's curated list of the most important stories, research papers, threads, and tools in AI.

> Watch the full episode on YouTube: [{YOUTUBE_TEXT}]({YOUTUBE_URL})

---

## Links from Office Hours
*Presented in the order they were discussed during the episode*

{LINKS_PLACEHOLDER}

---

## Archive
You can find **all previous weeks** of curated AI news here:
[Open Disruption Link Archive](https://opendisruption.com/weekly-links/)

---

*Curated by Todd Brous for [Open Disruption](https://opendisruption.com/)*
*Follow for weekly deep dives into the future of AI.*
`

const archiveHeader = `# Open Disruption — Link Archive

Welcome to the **Open Disruption Link Archive**, a weekly collection of curated AI news, research papers, product launches, and X (Twitter) threads from our live Office Hours sessions.

> Watch the weekly show on [YouTube](https://youtube.com/@OpenDisruption)
> Learn more at [opendisruption.com](https://opendisruption.com/)

---

## Archive
`

const archiveFooter = `
---

*This archive is open-source and updated weekly.*
`
