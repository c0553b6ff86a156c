package htmlgen

const archiveSection = `
---

## Archive
You can find **all previous weeks** of curated AI news here:
[Open Disruption Link Archive](https://opendisruption.com/weekly-links/)

---

*Curated by Todd Brous for [Open Disruption](https://opendisruption.com/)*
*Follow for weekly deep dives into the future of AI.*`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{title}</title>

    <!-- Google Analytics -->
    <script async src="https://www.googletagmanager.com/gtag/js?id={ga_id}"></script>
    <script>
        window.dataLayer = window.dataLayer || [];
        function gtag(){dataLayer.push(arguments);}
        gtag('js', new Date());
        gtag('config', '{ga_id}');
    </script>

    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background: white;
        }

        h1, h2, h3 {
            color: #C04A3B;
        }

        h1 {
            font-size: 2.5em;
            margin-bottom: 0.5em;
        }

        h2 {
            font-size: 1.8em;
            margin-top: 2em;
            margin-bottom: 1em;
            border-bottom: 2px solid #C04A3B;
            padding-bottom: 0.5em;
        }

        h3 {
            font-size: 1.3em;
            margin-top: 1.5em;
        }

        a {
            color: #C04A3B;
            text-decoration: none;
        }

        a:hover {
            text-decoration: underline;
        }

        .back-link {
            display: inline-block;
            margin-bottom: 20px;
            color: #666;
            font-size: 0.9em;
        }

        .date-info {
            color: #666;
            font-size: 0.9em;
            margin-bottom: 2em;
        }

        ul {
            padding-left: 0;
        }

        li {
            margin-bottom: 0.5em;
            list-style: none;
        }

        blockquote {
            border-left: 4px solid #C04A3B;
            margin: 1em 0;
            padding-left: 1em;
            color: #666;
            font-style: italic;
        }

        hr {
            border: none;
            border-top: 2px solid #eee;
            margin: 2em 0;
        }

        .archive-link {
            background: #C04A3B;
            color: white;
            padding: 10px 20px;
            border-radius: 5px;
            text-decoration: none;
            display: inline-block;
            margin: 1em 0;
        }

        .archive-link:hover {
            background: #A03A2B;
            text-decoration: none;
        }

        @media (max-width: 768px) {
            body {
                padding: 10px;
            }

            h1 {
                font-size: 2em;
            }

            h2 {
                font-size: 1.5em;
            }
        }
    </style>
</head>
<body>
    <a href="/" class="back-link">&larr; Back to Open Disruption</a>

    {content}
</body>
</html>`
