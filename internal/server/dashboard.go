package server

// DashboardHTML is the embedded single-page dashboard. It builds its controls
// from /api/layout, sends every control change over the /ws callback session
// (or POST /api/update while the socket is down) and draws the returned
// figures with Plotly.
const DashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>SpaceX Launch Records Dashboard</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #ffffff; color: #333; padding: 20px;
  }
  h1 { text-align: center; color: #503D36; font-size: 40px; margin-bottom: 20px; }
  .control { margin: 12px 0; }
  select {
    width: 100%; padding: 8px; font-size: 1em;
    border: 1px solid #ccc; border-radius: 4px; background: #fff;
  }
  .slider-label { font-weight: 600; margin-bottom: 6px; }
  .range { position: relative; height: 36px; }
  .range input[type=range] {
    position: absolute; left: 0; right: 0; top: 8px; width: 100%;
    pointer-events: none; background: none; -webkit-appearance: none; appearance: none;
  }
  .range input[type=range]::-webkit-slider-thumb { pointer-events: all; }
  .range input[type=range]::-moz-range-thumb { pointer-events: all; }
  .marks { display: flex; justify-content: space-between; font-size: 0.75em; color: #888; }
  .value { font-size: 0.85em; color: #555; margin-top: 4px; }
  .graph { min-height: 450px; margin: 10px 0; }
  .status { position: fixed; bottom: 8px; right: 12px; font-size: 0.75em; color: #aaa; }
  .status.connected { color: #3fb950; }
</style>
</head>
<body>
<h1 id="title">SpaceX Launch Records Dashboard</h1>

<div class="control">
  <select id="site-dropdown"></select>
</div>

<div id="success-pie-chart" class="graph"></div>

<div class="control">
  <p class="slider-label" id="slider-label">Payload range (Kg):</p>
  <div class="range" id="payload-slider">
    <input type="range" id="payload-low">
    <input type="range" id="payload-high">
  </div>
  <div class="marks" id="slider-marks"></div>
  <div class="value" id="slider-value"></div>
</div>

<div id="success-payload-scatter-chart" class="graph"></div>

<span class="status" id="conn-status">offline</span>

<script>
let ws = null;
const siteEl = document.getElementById('site-dropdown');
const lowEl = document.getElementById('payload-low');
const highEl = document.getElementById('payload-high');

function inputs() {
  let lo = Number(lowEl.value), hi = Number(highEl.value);
  if (lo > hi) { const t = lo; lo = hi; hi = t; }
  return { site: siteEl.value, payload: [lo, hi] };
}

function send(changed, payload) {
  const req = { inputs: inputs(), changed: changed };
  if (payload) req.inputs.payload = payload;
  document.getElementById('slider-value').textContent = req.inputs.payload[0] + ' - ' + req.inputs.payload[1] + ' kg';
  if (ws && ws.readyState === WebSocket.OPEN) {
    ws.send(JSON.stringify(req));
    return;
  }
  fetch('/api/update', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(req),
  }).then(r => r.json()).then(apply).catch(err => console.error('update failed', err));
}

function apply(resp) {
  if (!resp || !resp.outputs) {
    if (resp && resp.error) console.error(resp.error);
    return;
  }
  for (const [id, fig] of Object.entries(resp.outputs)) {
    Plotly.react(id, fig.data, fig.layout, { responsive: true });
  }
}

function connect() {
  const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
  ws = new WebSocket(proto + '//' + location.host + '/ws');
  const status = document.getElementById('conn-status');

  ws.onopen = () => {
    status.textContent = 'live';
    status.className = 'status connected';
  };
  ws.onclose = () => {
    status.textContent = 'offline';
    status.className = 'status';
    setTimeout(connect, 2000);
  };
  ws.onmessage = (e) => apply(JSON.parse(e.data));
}

function build(layout) {
  document.title = layout.title;
  document.getElementById('title').textContent = layout.title;

  const d = layout.dropdown;
  siteEl.innerHTML = '';
  for (const o of d.options) {
    const opt = document.createElement('option');
    opt.value = o.value;
    opt.textContent = o.label;
    siteEl.appendChild(opt);
  }
  siteEl.value = d.value;
  siteEl.title = d.placeholder;

  const s = layout.slider;
  document.getElementById('slider-label').textContent = s.label;
  for (const el of [lowEl, highEl]) {
    el.min = s.min; el.max = s.max; el.step = s.step;
  }
  lowEl.value = s.value[0];
  highEl.value = s.value[1];

  const marks = document.getElementById('slider-marks');
  marks.innerHTML = '';
  Object.keys(s.marks).map(Number).sort((a, b) => a - b).forEach(k => {
    const span = document.createElement('span');
    span.textContent = s.marks[String(k)];
    marks.appendChild(span);
  });

  siteEl.addEventListener('change', () => send([d.id]));
  lowEl.addEventListener('change', () => send([s.id]));
  highEl.addEventListener('change', () => send([s.id]));

  // The range inputs snap to the step; the first render uses the exact data bounds.
  send([], s.value);
}

fetch('/api/layout').then(r => r.json()).then(build);
connect();
</script>
</body>
</html>`
