package http

// indexHTML is the embedded review page: two upload panels, optional page
// ranges, and the comparison report rendered client-side against the JSON
// API. Everything ships inside the binary; there are no static assets.
var indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>SteelCheck - Shop Drawing Review</title>
    <style>` + pageCSS() + `</style>
</head>
<body>
    <div class="container">
        <header>
            <h1>&#128208; SteelCheck</h1>
            <p>Upload structural and shop drawings to compare member sizes and identify discrepancies.</p>
        </header>

        <div class="panels">
            <div class="panel">
                <h2>&#128203; Structural Drawings</h2>
                <input type="file" id="structuralFiles" accept=".pdf" multiple>
                <div class="pages">
                    <label>Pages from <input type="number" id="structuralStart" min="0" value="0"></label>
                    <label>to <input type="number" id="structuralEnd" min="0" value="0"> (0 = all)</label>
                </div>
            </div>
            <div class="panel">
                <h2>&#127959;&#65039; Shop Drawings</h2>
                <input type="file" id="shopFiles" accept=".pdf" multiple>
                <div class="pages">
                    <label>Pages from <input type="number" id="shopStart" min="0" value="0"></label>
                    <label>to <input type="number" id="shopEnd" min="0" value="0"> (0 = all)</label>
                </div>
            </div>
        </div>

        <div class="actions">
            <button id="compareBtn" class="primary">&#128269; Compare Member Sizes</button>
            <button id="extractBtn">&#129514; Test Member Extraction</button>
            <button id="csvBtn" disabled>&#128229; Download Report as CSV</button>
        </div>

        <div id="status" class="status" hidden></div>
        <div id="results" hidden></div>
    </div>
    <script>` + pageScript() + `</script>
</body>
</html>
`

func pageCSS() string {
	return `
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: 'Segoe UI', system-ui, -apple-system, sans-serif;
            background: #f4f6f8;
            color: #1f2937;
            min-height: 100vh;
        }

        .container { max-width: 1100px; margin: 0 auto; padding: 24px; }

        header { margin-bottom: 24px; }
        header h1 { font-size: 1.8em; margin-bottom: 4px; }
        header p { color: #6b7280; }

        .panels { display: flex; gap: 16px; flex-wrap: wrap; }

        .panel {
            flex: 1;
            min-width: 320px;
            background: #fff;
            border: 1px solid #e5e7eb;
            border-radius: 8px;
            padding: 16px;
        }
        .panel h2 { font-size: 1.1em; margin-bottom: 12px; }
        .panel input[type="file"] { width: 100%; margin-bottom: 12px; }

        .pages { display: flex; gap: 12px; color: #6b7280; font-size: 0.9em; }
        .pages input { width: 64px; padding: 4px 6px; border: 1px solid #d1d5db; border-radius: 4px; }

        .actions { margin: 20px 0; display: flex; gap: 12px; flex-wrap: wrap; }

        button {
            padding: 10px 18px;
            border: 1px solid #d1d5db;
            border-radius: 6px;
            background: #fff;
            cursor: pointer;
            font-size: 0.95em;
        }
        button.primary { background: #2563eb; border-color: #2563eb; color: #fff; }
        button:disabled { opacity: 0.5; cursor: not-allowed; }

        .status { padding: 12px 16px; border-radius: 6px; margin-bottom: 16px; }
        .status.info { background: #dbeafe; color: #1e40af; }
        .status.error { background: #fee2e2; color: #991b1b; }

        .metrics { display: flex; gap: 16px; margin-bottom: 16px; flex-wrap: wrap; }
        .metric {
            background: #fff;
            border: 1px solid #e5e7eb;
            border-radius: 8px;
            padding: 12px 20px;
            min-width: 140px;
        }
        .metric .value { font-size: 1.6em; font-weight: 600; }
        .metric .label { color: #6b7280; font-size: 0.85em; }

        .warnings { background: #fef3c7; color: #92400e; border-radius: 6px; padding: 12px 16px; margin-bottom: 16px; }
        .warnings li { margin-left: 18px; }

        table { width: 100%; border-collapse: collapse; background: #fff; margin-bottom: 24px; }
        th, td { text-align: left; padding: 8px 12px; border: 1px solid #e5e7eb; font-size: 0.9em; }
        th { background: #f9fafb; }
        td.ctx { color: #6b7280; font-size: 0.8em; }

        tr.match td.st { color: #047857; }
        tr.missing_in_shop td.st { color: #b91c1c; }
        tr.extra_in_shop td.st { color: #b45309; }

        h3 { margin: 16px 0 8px; font-size: 1.05em; }
`
}

func pageScript() string {
	return `
        var lastReport = null;

        var statusLabels = {
            'match': '✅ Match',
            'missing_in_shop': '❌ Missing in Shop',
            'extra_in_shop': '⚠️ Extra in Shop'
        };

        function esc(s) {
            if (s === undefined || s === null) return '';
            return String(s).replace(/&/g, '&amp;').replace(/</g, '&lt;').replace(/>/g, '&gt;');
        }

        function showStatus(message, kind) {
            var el = document.getElementById('status');
            el.textContent = message;
            el.className = 'status ' + kind;
            el.hidden = false;
        }

        function hideStatus() {
            document.getElementById('status').hidden = true;
        }

        function compareFormData() {
            var fd = new FormData();
            var structural = document.getElementById('structuralFiles').files;
            var shop = document.getElementById('shopFiles').files;
            for (var i = 0; i < structural.length; i++) fd.append('structural', structural[i]);
            for (var j = 0; j < shop.length; j++) fd.append('shop', shop[j]);
            fd.append('structural_start', document.getElementById('structuralStart').value || '0');
            fd.append('structural_end', document.getElementById('structuralEnd').value || '0');
            fd.append('shop_start', document.getElementById('shopStart').value || '0');
            fd.append('shop_end', document.getElementById('shopEnd').value || '0');
            return fd;
        }

        async function runCompare() {
            hideStatus();
            showStatus('Processing drawings...', 'info');
            try {
                var resp = await fetch('/api/v1/review/compare', { method: 'POST', body: compareFormData() });
                var data = await resp.json();
                if (!resp.ok) {
                    showStatus(data.error || 'Comparison failed', 'error');
                    return;
                }
                lastReport = data;
                document.getElementById('csvBtn').disabled = false;
                hideStatus();
                renderReport(data);
            } catch (err) {
                showStatus('Request failed: ' + err.message, 'error');
            }
        }

        async function downloadCSV() {
            try {
                var resp = await fetch('/api/v1/review/compare/csv', { method: 'POST', body: compareFormData() });
                if (!resp.ok) {
                    var data = await resp.json();
                    showStatus(data.error || 'CSV export failed', 'error');
                    return;
                }
                var blob = await resp.blob();
                var url = URL.createObjectURL(blob);
                var a = document.createElement('a');
                a.href = url;
                a.download = 'member_comparison_report.csv';
                document.body.appendChild(a);
                a.click();
                a.remove();
                URL.revokeObjectURL(url);
            } catch (err) {
                showStatus('Request failed: ' + err.message, 'error');
            }
        }

        async function runExtract() {
            hideStatus();
            var fd = new FormData();
            var structural = document.getElementById('structuralFiles').files;
            if (structural.length === 0) {
                showStatus('Please upload at least one structural drawing first', 'error');
                return;
            }
            for (var i = 0; i < structural.length; i++) fd.append('drawings', structural[i]);
            fd.append('start', document.getElementById('structuralStart').value || '0');
            fd.append('end', document.getElementById('structuralEnd').value || '0');

            showStatus('Testing member extraction...', 'info');
            try {
                var resp = await fetch('/api/v1/review/extract', { method: 'POST', body: fd });
                var data = await resp.json();
                if (!resp.ok) {
                    showStatus(data.error || 'Extraction failed', 'error');
                    return;
                }
                hideStatus();
                renderExtraction(data);
            } catch (err) {
                showStatus('Request failed: ' + err.message, 'error');
            }
        }

        function metricHTML(value, label) {
            return '<div class="metric"><div class="value">' + esc(value) + '</div>' +
                '<div class="label">' + esc(label) + '</div></div>';
        }

        function warningsHTML(warnings) {
            if (!warnings || warnings.length === 0) return '';
            var html = '<div class="warnings"><ul>';
            for (var i = 0; i < warnings.length; i++) html += '<li>' + esc(warnings[i]) + '</li>';
            return html + '</ul></div>';
        }

        function renderReport(report) {
            var c = report.comparison;
            var html = '<div class="metrics">' +
                metricHTML(c.matchPercentage.toFixed(1) + '%', 'Match Percentage') +
                metricHTML(c.missingInShop.length, 'Missing in Shop') +
                metricHTML(c.extraInShop.length, 'Extra in Shop') +
                metricHTML(report.structural.uniqueCount, 'Structural Members') +
                metricHTML(report.shop.uniqueCount, 'Shop Members') +
                '</div>';

            html += warningsHTML(report.warnings);

            html += '<h3>Detailed Comparison Report</h3>';
            html += '<table><tr><th>Member</th><th>Status</th><th>In Structural</th><th>In Shop</th>' +
                '<th>Structural Context</th><th>Shop Context</th></tr>';
            for (var i = 0; i < report.rows.length; i++) {
                var row = report.rows[i];
                html += '<tr class="' + esc(row.status) + '">' +
                    '<td>' + esc(row.member) + '</td>' +
                    '<td class="st">' + (statusLabels[row.status] || esc(row.status)) + '</td>' +
                    '<td>' + (row.inStructural ? 'Yes' : 'No') + '</td>' +
                    '<td>' + (row.inShop ? 'Yes' : 'No') + '</td>' +
                    '<td class="ctx">' + esc(row.structuralContext) + '</td>' +
                    '<td class="ctx">' + esc(row.shopContext) + '</td></tr>';
            }
            html += '</table>';

            var results = document.getElementById('results');
            results.innerHTML = html;
            results.hidden = false;
        }

        function renderExtraction(result) {
            var html = '<div class="metrics">' +
                metricHTML(result.uniqueCount, 'Unique Members Found') +
                metricHTML(result.files.length, 'Files Processed') +
                '</div>';

            html += '<h3>Files</h3><table><tr><th>File</th><th>Members</th><th>Notes</th></tr>';
            for (var i = 0; i < result.files.length; i++) {
                var f = result.files[i];
                var note = f.error ? ('❌ ' + f.error) : (f.warning ? ('⚠️ ' + f.warning) : '');
                html += '<tr><td>' + esc(f.name) + '</td><td>' + esc(f.memberCount || 0) + '</td>' +
                    '<td class="ctx">' + esc(note) + '</td></tr>';
            }
            html += '</table>';

            html += '<h3>Extracted Members</h3>';
            html += '<table><tr><th>Designation</th><th>Type</th><th>Raw Text</th><th>Context</th></tr>';
            for (var j = 0; j < result.members.length; j++) {
                var m = result.members[j];
                html += '<tr><td>' + esc(m.normalized) + '</td><td>' + esc(m.section.toUpperCase()) + '</td>' +
                    '<td>' + esc(m.raw) + '</td><td class="ctx">' + esc(m.context) + '</td></tr>';
            }
            html += '</table>';

            var results = document.getElementById('results');
            results.innerHTML = html;
            results.hidden = false;
        }

        document.getElementById('compareBtn').addEventListener('click', runCompare);
        document.getElementById('extractBtn').addEventListener('click', runExtract);
        document.getElementById('csvBtn').addEventListener('click', downloadCSV);
`
}
